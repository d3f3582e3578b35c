package infra_memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ZeNuW/filmorate/internal/model"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[int64]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]model.User)}
}

func (r *UserRepository) Store(ctx context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; ok {
		return fmt.Errorf("%w: user %d", model.ErrAlreadyExists, u.ID)
	}
	r.users[u.ID] = u
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("%w: user %d", model.ErrNotFound, u.ID)
	}
	r.users[u.ID] = u
	return nil
}

func (r *UserRepository) LoadByID(ctx context.Context, id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("%w: user %d", model.ErrNotFound, id)
	}
	return u, nil
}

// LoadByIDs returns the known users among ids ordered by id.
func (r *UserRepository) LoadByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := slices.Compact(slices.Sorted(slices.Values(ids)))
	users := make([]model.User, 0, len(sorted))
	for _, id := range sorted {
		if u, ok := r.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepository) Load(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, id := range slices.Sorted(maps.Keys(r.users)) {
		users = append(users, r.users[id])
	}
	return users, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok, nil
}

func (r *UserRepository) MaxID(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maxKey(r.users), nil
}
