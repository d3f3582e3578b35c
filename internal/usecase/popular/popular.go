package usecase_popular

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync/atomic"

	"github.com/ZeNuW/filmorate/internal/model"
	"golang.org/x/sync/singleflight"
)

// DefaultCount is used when the caller does not ask for a specific size.
const DefaultCount = 10

var ErrFailedToRank = errors.New("failed to rank films")

//go:generate mockery --name=Films --output=./mocks/popular/films --filename=films.go
type Films interface {
	FindAll(ctx context.Context) ([]model.Film, error)
}

//go:generate mockery --name=Cache --output=./mocks/popular/cache --filename=cache.go
type Cache interface {
	Get(ctx context.Context, count int) ([]model.Film, bool, error)
	Set(ctx context.Context, count int, films []model.Film) error
	Invalidate(ctx context.Context) error
}

type Usecase struct {
	films Films
	cache Cache

	group singleflight.Group
	// generation is bumped on every invalidation so results computed before it are not cached.
	generation atomic.Uint64

	logger *slog.Logger
}

// ranking is a shared computation result tagged with the generation it was read at.
type ranking struct {
	films      []model.Film
	generation uint64
}

type Option func(*Usecase)

func WithCache(c Cache) Option {
	return func(u *Usecase) {
		u.cache = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(films Films, opts ...Option) *Usecase {
	u := &Usecase{
		films:  films,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// TopLiked returns at most count films with the most likes first. Films with
// equal like counts keep ascending id order.
func (u *Usecase) TopLiked(ctx context.Context, count int) ([]model.Film, error) {
	if count <= 0 {
		return []model.Film{}, nil
	}

	if u.cache != nil {
		films, ok, err := u.cache.Get(ctx, count)
		if err != nil {
			u.logger.Warn("popular cache read failed", slog.String("error", err.Error()))
		}
		if ok {
			return films, nil
		}
	}

	v, err, _ := u.group.Do(strconv.Itoa(count), func() (any, error) {
		gen := u.generation.Load()
		all, err := u.films.FindAll(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		return ranking{films: Rank(all, count), generation: gen}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToRank, err)
	}
	res := v.(ranking)
	ranked := slices.Clone(res.films)

	if u.cache != nil && u.generation.Load() == res.generation {
		if err := u.cache.Set(ctx, count, ranked); err != nil {
			u.logger.Warn("popular cache write failed", slog.String("error", err.Error()))
		}
	}

	return ranked, nil
}

// Invalidate drops cached rankings. It matches the event handler signature so
// it can be subscribed to like and film events directly.
func (u *Usecase) Invalidate(ctx context.Context, e model.Event) error {
	u.generation.Add(1)
	if u.cache == nil {
		return nil
	}
	return u.cache.Invalidate(ctx)
}

// Rank orders films by like count descending, keeping the input order for ties,
// and truncates the result to count.
func Rank(films []model.Film, count int) []model.Film {
	if count <= 0 {
		return []model.Film{}
	}

	ranked := slices.Clone(films)
	slices.SortStableFunc(ranked, func(a, b model.Film) int {
		return b.Rate - a.Rate
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked
}
