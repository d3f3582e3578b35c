package usecase_user

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZeNuW/filmorate/internal/model"
)

var (
	ErrFailedToStoreUser  = errors.New("failed to store user")
	ErrFailedToLoadUser   = errors.New("failed to load user")
	ErrFailedToAllocateID = errors.New("failed to allocate user id")
)

//go:generate mockery --name=Repository --output=./mocks/user/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, u model.User) error
	Update(ctx context.Context, u model.User) error
	LoadByID(ctx context.Context, id int64) (model.User, error)
	LoadByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	Load(ctx context.Context) ([]model.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

//go:generate mockery --name=IDAllocator --output=./mocks/user/ids --filename=ids.go
type IDAllocator interface {
	Next(ctx context.Context) (int64, error)
}

type Usecase struct {
	repository Repository
	ids        IDAllocator
}

func New(repository Repository, ids IDAllocator) *Usecase {
	return &Usecase{
		repository: repository,
		ids:        ids,
	}
}

// Create stores a new user. A blank name is replaced with the login.
func (u *Usecase) Create(ctx context.Context, user model.User) (model.User, error) {
	if err := user.Validate(); err != nil {
		return model.User{}, err
	}

	if user.ID != 0 {
		exists, err := u.repository.Exists(ctx, user.ID)
		if err != nil {
			return model.User{}, fmt.Errorf("%w: %w", ErrFailedToLoadUser, err)
		}
		if exists {
			return model.User{}, fmt.Errorf("%w: user %d", model.ErrAlreadyExists, user.ID)
		}
	}

	id, err := u.ids.Next(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToAllocateID, err)
	}

	user = user.WithDefaultName()
	user.ID = id

	if err := u.repository.Store(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToStoreUser, err)
	}
	return user, nil
}

func (u *Usecase) Update(ctx context.Context, user model.User) (model.User, error) {
	if err := user.Validate(); err != nil {
		return model.User{}, err
	}

	if err := u.repository.Update(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToStoreUser, err)
	}
	return user, nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToLoadUser, err)
	}
	return user, nil
}

// GetMany returns the users with the given ids ordered by id. Unknown ids are skipped.
func (u *Usecase) GetMany(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}

	users, err := u.repository.LoadByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadUser, err)
	}
	return users, nil
}

func (u *Usecase) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := u.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadUser, err)
	}
	return users, nil
}

func (u *Usecase) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := u.repository.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFailedToLoadUser, err)
	}
	return exists, nil
}
