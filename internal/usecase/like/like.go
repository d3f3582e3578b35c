package usecase_like

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/ZeNuW/filmorate/internal/service/pairlock"
)

var (
	ErrFailedToStoreLike = errors.New("failed to store like")
	ErrFailedToLoadLikes = errors.New("failed to load likes")
)

//go:generate mockery --name=Repository --output=./mocks/like/repository --filename=repository.go
type Repository interface {
	// Add reports whether the like was inserted. Repeated likes are not an error.
	Add(ctx context.Context, filmID, userID int64) (bool, error)
	Remove(ctx context.Context, filmID, userID int64) (bool, error)
	Count(ctx context.Context, filmID int64) (int, error)
	Counts(ctx context.Context, filmIDs []int64) (map[int64]int, error)
}

//go:generate mockery --name=Registry --output=./mocks/like/registry --filename=registry.go
type Registry interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

//go:generate mockery --name=EventPublisher --output=./mocks/like/publisher --filename=publisher.go
type EventPublisher interface {
	Publish(ctx context.Context, e model.Event)
}

type Usecase struct {
	repository Repository
	films      Registry
	users      Registry
	locks      *pairlock.Locker
	publisher  EventPublisher
}

type Option func(*Usecase)

func WithPublisher(p EventPublisher) Option {
	return func(u *Usecase) {
		u.publisher = p
	}
}

func New(repository Repository, films, users Registry, opts ...Option) *Usecase {
	u := &Usecase{
		repository: repository,
		films:      films,
		users:      users,
		locks:      pairlock.New(pairlock.DefaultStripes),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) SetLike(ctx context.Context, filmID, userID int64) error {
	if err := u.requireParticipants(ctx, filmID, userID); err != nil {
		return err
	}

	unlock := u.locks.Lock(filmID, userID)
	defer unlock()

	added, err := u.repository.Add(ctx, filmID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStoreLike, err)
	}

	if added {
		u.publish(ctx, model.NewEvent(model.EventLikeAdded, userID, filmID))
	}
	return nil
}

func (u *Usecase) DeleteLike(ctx context.Context, filmID, userID int64) error {
	if err := u.requireParticipants(ctx, filmID, userID); err != nil {
		return err
	}

	unlock := u.locks.Lock(filmID, userID)
	defer unlock()

	removed, err := u.repository.Remove(ctx, filmID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStoreLike, err)
	}

	if removed {
		u.publish(ctx, model.NewEvent(model.EventLikeRemoved, userID, filmID))
	}
	return nil
}

func (u *Usecase) CountLikes(ctx context.Context, filmID int64) (int, error) {
	if err := require(ctx, u.films, "film", filmID); err != nil {
		return 0, err
	}

	n, err := u.repository.Count(ctx, filmID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToLoadLikes, err)
	}
	return n, nil
}

// Counts returns like counts for the given films. Films without likes are absent from the map.
func (u *Usecase) Counts(ctx context.Context, filmIDs []int64) (map[int64]int, error) {
	counts, err := u.repository.Counts(ctx, filmIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadLikes, err)
	}
	return counts, nil
}

func (u *Usecase) requireParticipants(ctx context.Context, filmID, userID int64) error {
	if err := require(ctx, u.films, "film", filmID); err != nil {
		return err
	}
	return require(ctx, u.users, "user", userID)
}

func (u *Usecase) publish(ctx context.Context, e model.Event) {
	if u.publisher != nil {
		u.publisher.Publish(ctx, e)
	}
}

func require(ctx context.Context, r Registry, kind string, id int64) error {
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s %d", model.ErrNotFound, kind, id)
	}
	return nil
}
