package usecase_friendship

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/ZeNuW/filmorate/internal/service/pairlock"
)

var (
	ErrFailedToStoreEdge = errors.New("failed to store friendship")
	ErrFailedToLoadEdges = errors.New("failed to load friendships")
)

// Repository stores directed owner -> target edges. Confirmation is never stored.
//
//go:generate mockery --name=Repository --output=./mocks/friendship/repository --filename=repository.go
type Repository interface {
	// AddEdge fails with model.ErrAlreadyFriends when the edge is present.
	AddEdge(ctx context.Context, ownerID, targetID int64) error
	RemoveEdge(ctx context.Context, ownerID, targetID int64) (bool, error)
	HasEdge(ctx context.Context, ownerID, targetID int64) (bool, error)
	Targets(ctx context.Context, ownerID int64) ([]int64, error)
	Edges(ctx context.Context, ownerID int64) ([]model.Friendship, error)
	Mutual(ctx context.Context, a, b int64) ([]int64, error)
}

//go:generate mockery --name=Users --output=./mocks/friendship/users --filename=users.go
type Users interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetMany(ctx context.Context, ids []int64) ([]model.User, error)
}

//go:generate mockery --name=EventPublisher --output=./mocks/friendship/publisher --filename=publisher.go
type EventPublisher interface {
	Publish(ctx context.Context, e model.Event)
}

type Usecase struct {
	repository Repository
	users      Users
	locks      *pairlock.Locker
	publisher  EventPublisher
}

type Option func(*Usecase)

func WithPublisher(p EventPublisher) Option {
	return func(u *Usecase) {
		u.publisher = p
	}
}

func New(repository Repository, users Users, opts ...Option) *Usecase {
	u := &Usecase{
		repository: repository,
		users:      users,
		locks:      pairlock.New(pairlock.DefaultStripes),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// AddFriend records a friend request from owner to target. The pair reads as
// confirmed once target adds owner back.
func (u *Usecase) AddFriend(ctx context.Context, ownerID, targetID int64) error {
	if err := validatePair(ownerID, targetID); err != nil {
		return err
	}
	if ownerID == targetID {
		return fmt.Errorf("%w: user %d cannot befriend themselves", model.ErrInvalidArgument, ownerID)
	}

	unlock := u.locks.LockUnordered(ownerID, targetID)
	defer unlock()

	if err := u.requireUsers(ctx, ownerID, targetID); err != nil {
		return err
	}

	if err := u.repository.AddEdge(ctx, ownerID, targetID); err != nil {
		if errors.Is(err, model.ErrAlreadyFriends) {
			return fmt.Errorf("%w: %d -> %d", model.ErrAlreadyFriends, ownerID, targetID)
		}
		return fmt.Errorf("%w: %w", ErrFailedToStoreEdge, err)
	}

	u.publish(ctx, model.NewEvent(model.EventFriendAdded, ownerID, targetID))
	return nil
}

// DeleteFriend removes owner -> target only. A missing edge is not an error and
// the reverse edge is kept, now unconfirmed.
func (u *Usecase) DeleteFriend(ctx context.Context, ownerID, targetID int64) error {
	if err := validatePair(ownerID, targetID); err != nil {
		return err
	}

	unlock := u.locks.LockUnordered(ownerID, targetID)
	defer unlock()

	removed, err := u.repository.RemoveEdge(ctx, ownerID, targetID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStoreEdge, err)
	}

	if removed {
		u.publish(ctx, model.NewEvent(model.EventFriendRemoved, ownerID, targetID))
	}
	return nil
}

// ListFriends returns the users id sent a request to, ordered by id.
func (u *Usecase) ListFriends(ctx context.Context, id int64) ([]model.User, error) {
	if err := u.requireUsers(ctx, id); err != nil {
		return nil, err
	}

	ids, err := u.repository.Targets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadEdges, err)
	}
	return u.users.GetMany(ctx, ids)
}

func (u *Usecase) ListMutualFriends(ctx context.Context, a, b int64) ([]model.User, error) {
	if err := u.requireUsers(ctx, a, b); err != nil {
		return nil, err
	}

	ids, err := u.repository.Mutual(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadEdges, err)
	}
	return u.users.GetMany(ctx, ids)
}

// Friendships returns the outgoing edges of id with the derived confirmation flag.
func (u *Usecase) Friendships(ctx context.Context, id int64) ([]model.Friendship, error) {
	if err := u.requireUsers(ctx, id); err != nil {
		return nil, err
	}

	edges, err := u.repository.Edges(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadEdges, err)
	}
	return edges, nil
}

// Confirmed reports whether both a -> b and b -> a exist.
func (u *Usecase) Confirmed(ctx context.Context, a, b int64) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, err
	}

	unlock := u.locks.LockUnordered(a, b)
	defer unlock()

	if err := u.requireUsers(ctx, a, b); err != nil {
		return false, err
	}

	forward, err := u.repository.HasEdge(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFailedToLoadEdges, err)
	}
	if !forward {
		return false, nil
	}

	backward, err := u.repository.HasEdge(ctx, b, a)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFailedToLoadEdges, err)
	}
	return backward, nil
}

func (u *Usecase) requireUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		exists, err := u.users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %d", model.ErrNotFound, id)
		}
	}
	return nil
}

func (u *Usecase) publish(ctx context.Context, e model.Event) {
	if u.publisher != nil {
		u.publisher.Publish(ctx, e)
	}
}

func validatePair(a, b int64) error {
	if a <= 0 || b <= 0 {
		return fmt.Errorf("%w: user ids must be positive, got %d and %d", model.ErrInvalidArgument, a, b)
	}
	return nil
}
