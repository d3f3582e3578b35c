package usecase_reference

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ZeNuW/filmorate/internal/model"
)

var ErrFailedToLoadCatalog = errors.New("failed to load reference catalog")

//go:generate mockery --name=Source --output=./mocks/reference/source --filename=source.go
type Source interface {
	LoadGenres(ctx context.Context) ([]model.Genre, error)
	LoadMpa(ctx context.Context) ([]model.Mpa, error)
}

// Catalog is read once at startup and never changes afterwards, so lookups take no locks.
type Catalog struct {
	genres    map[int64]model.Genre
	genreList []model.Genre
	mpa       map[int64]model.Mpa
	mpaList   []model.Mpa
}

func Load(ctx context.Context, src Source) (*Catalog, error) {
	genres, err := src.LoadGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadCatalog, err)
	}
	mpa, err := src.LoadMpa(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadCatalog, err)
	}
	return newCatalog(genres, mpa), nil
}

// NewDefault builds the catalog from the built-in genre and rating tables.
func NewDefault() *Catalog {
	return newCatalog(model.DefaultGenres(), model.DefaultMpa())
}

func newCatalog(genres []model.Genre, mpa []model.Mpa) *Catalog {
	c := &Catalog{
		genres: make(map[int64]model.Genre, len(genres)),
		mpa:    make(map[int64]model.Mpa, len(mpa)),
	}
	for _, g := range genres {
		c.genres[g.ID] = g
	}
	for _, m := range mpa {
		c.mpa[m.ID] = m
	}

	c.genreList = make([]model.Genre, 0, len(c.genres))
	for _, g := range c.genres {
		c.genreList = append(c.genreList, g)
	}
	slices.SortFunc(c.genreList, func(a, b model.Genre) int { return compareIDs(a.ID, b.ID) })

	c.mpaList = make([]model.Mpa, 0, len(c.mpa))
	for _, m := range c.mpa {
		c.mpaList = append(c.mpaList, m)
	}
	slices.SortFunc(c.mpaList, func(a, b model.Mpa) int { return compareIDs(a.ID, b.ID) })

	return c
}

func (c *Catalog) Genre(ctx context.Context, id int64) (model.Genre, error) {
	g, ok := c.genres[id]
	if !ok {
		return model.Genre{}, fmt.Errorf("%w: genre %d", model.ErrNotFound, id)
	}
	return g, nil
}

func (c *Catalog) Genres(ctx context.Context) []model.Genre {
	return slices.Clone(c.genreList)
}

func (c *Catalog) Mpa(ctx context.Context, id int64) (model.Mpa, error) {
	m, ok := c.mpa[id]
	if !ok {
		return model.Mpa{}, fmt.Errorf("%w: mpa %d", model.ErrNotFound, id)
	}
	return m, nil
}

func (c *Catalog) MpaList(ctx context.Context) []model.Mpa {
	return slices.Clone(c.mpaList)
}

func compareIDs(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
