package usecase_film

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZeNuW/filmorate/internal/model"
)

var (
	ErrFailedToStoreFilm  = errors.New("failed to store film")
	ErrFailedToLoadFilm   = errors.New("failed to load film")
	ErrFailedToAllocateID = errors.New("failed to allocate film id")
	ErrFailedToCountLikes = errors.New("failed to count likes")
	ErrUnknownReference   = errors.New("unknown genre or mpa")
)

//go:generate mockery --name=Repository --output=./mocks/film/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, f model.Film) error
	Update(ctx context.Context, f model.Film) error
	LoadByID(ctx context.Context, id int64) (model.Film, error)
	Load(ctx context.Context) ([]model.Film, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

//go:generate mockery --name=LikeCounter --output=./mocks/film/likes --filename=likes.go
type LikeCounter interface {
	Counts(ctx context.Context, filmIDs []int64) (map[int64]int, error)
}

//go:generate mockery --name=Catalog --output=./mocks/film/catalog --filename=catalog.go
type Catalog interface {
	Genre(ctx context.Context, id int64) (model.Genre, error)
	Mpa(ctx context.Context, id int64) (model.Mpa, error)
}

//go:generate mockery --name=IDAllocator --output=./mocks/film/ids --filename=ids.go
type IDAllocator interface {
	Next(ctx context.Context) (int64, error)
}

//go:generate mockery --name=EventPublisher --output=./mocks/film/publisher --filename=publisher.go
type EventPublisher interface {
	Publish(ctx context.Context, e model.Event)
}

type Usecase struct {
	repository Repository
	likes      LikeCounter
	catalog    Catalog
	ids        IDAllocator
	publisher  EventPublisher
}

type Option func(*Usecase)

func WithPublisher(p EventPublisher) Option {
	return func(u *Usecase) {
		u.publisher = p
	}
}

func New(
	repository Repository,
	likes LikeCounter,
	catalog Catalog,
	ids IDAllocator,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repository: repository,
		likes:      likes,
		catalog:    catalog,
		ids:        ids,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Create(ctx context.Context, f model.Film) (model.Film, error) {
	if err := f.Validate(); err != nil {
		return model.Film{}, err
	}

	if f.ID != 0 {
		exists, err := u.repository.Exists(ctx, f.ID)
		if err != nil {
			return model.Film{}, fmt.Errorf("%w: %w", ErrFailedToLoadFilm, err)
		}
		if exists {
			return model.Film{}, fmt.Errorf("%w: film %d", model.ErrAlreadyExists, f.ID)
		}
	}

	f, err := u.resolveReferences(ctx, f)
	if err != nil {
		return model.Film{}, err
	}

	id, err := u.ids.Next(ctx)
	if err != nil {
		return model.Film{}, fmt.Errorf("%w: %w", ErrFailedToAllocateID, err)
	}
	f.ID = id
	f.Rate = 0

	if err := u.repository.Store(ctx, f); err != nil {
		return model.Film{}, fmt.Errorf("%w: %w", ErrFailedToStoreFilm, err)
	}

	u.publish(ctx, model.NewEvent(model.EventFilmCreated, 0, f.ID))
	return f, nil
}

// Update replaces every stored field of the film. The like count is not part of it.
func (u *Usecase) Update(ctx context.Context, f model.Film) (model.Film, error) {
	if err := f.Validate(); err != nil {
		return model.Film{}, err
	}

	f, err := u.resolveReferences(ctx, f)
	if err != nil {
		return model.Film{}, err
	}

	if err := u.repository.Update(ctx, f); err != nil {
		return model.Film{}, fmt.Errorf("%w: %w", ErrFailedToStoreFilm, err)
	}

	films, err := u.withRates(ctx, []model.Film{f})
	if err != nil {
		return model.Film{}, err
	}

	u.publish(ctx, model.NewEvent(model.EventFilmUpdated, 0, f.ID))
	return films[0], nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (model.Film, error) {
	f, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		return model.Film{}, fmt.Errorf("%w: %w", ErrFailedToLoadFilm, err)
	}

	films, err := u.withRates(ctx, []model.Film{f})
	if err != nil {
		return model.Film{}, err
	}
	return films[0], nil
}

// FindAll returns every film ordered by id.
func (u *Usecase) FindAll(ctx context.Context) ([]model.Film, error) {
	films, err := u.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadFilm, err)
	}
	return u.withRates(ctx, films)
}

func (u *Usecase) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := u.repository.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFailedToLoadFilm, err)
	}
	return exists, nil
}

func (u *Usecase) resolveReferences(ctx context.Context, f model.Film) (model.Film, error) {
	mpa, err := u.catalog.Mpa(ctx, f.Mpa.ID)
	if err != nil {
		return model.Film{}, fmt.Errorf("%w: %w", ErrUnknownReference, err)
	}
	f.Mpa = mpa

	ids := f.GenreIDs()
	genres := make([]model.Genre, 0, len(ids))
	for _, id := range ids {
		g, err := u.catalog.Genre(ctx, id)
		if err != nil {
			return model.Film{}, fmt.Errorf("%w: %w", ErrUnknownReference, err)
		}
		genres = append(genres, g)
	}
	f.Genres = genres

	return f, nil
}

func (u *Usecase) withRates(ctx context.Context, films []model.Film) ([]model.Film, error) {
	if len(films) == 0 {
		return films, nil
	}

	ids := make([]int64, len(films))
	for i, f := range films {
		ids[i] = f.ID
	}

	counts, err := u.likes.Counts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToCountLikes, err)
	}

	for i := range films {
		films[i].Rate = counts[films[i].ID]
	}
	return films, nil
}

func (u *Usecase) publish(ctx context.Context, e model.Event) {
	if u.publisher != nil {
		u.publisher.Publish(ctx, e)
	}
}
