package infra_memory

import (
	"context"
	"sync"
)

type LikeRepository struct {
	mu    sync.RWMutex
	likes map[int64]map[int64]struct{}
}

func NewLikeRepository() *LikeRepository {
	return &LikeRepository{likes: make(map[int64]map[int64]struct{})}
}

func (r *LikeRepository) Add(ctx context.Context, filmID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.likes[filmID]
	if !ok {
		users = make(map[int64]struct{})
		r.likes[filmID] = users
	}
	if _, ok := users[userID]; ok {
		return false, nil
	}
	users[userID] = struct{}{}
	return true, nil
}

func (r *LikeRepository) Remove(ctx context.Context, filmID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.likes[filmID]
	if _, ok := users[userID]; !ok {
		return false, nil
	}
	delete(users, userID)
	if len(users) == 0 {
		delete(r.likes, filmID)
	}
	return true, nil
}

func (r *LikeRepository) Count(ctx context.Context, filmID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.likes[filmID]), nil
}

func (r *LikeRepository) Counts(ctx context.Context, filmIDs []int64) (map[int64]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[int64]int, len(filmIDs))
	for _, id := range filmIDs {
		if n := len(r.likes[id]); n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}
