package infra_memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ZeNuW/filmorate/internal/model"
)

// FriendshipRepository stores outgoing edges per owner.
type FriendshipRepository struct {
	mu    sync.RWMutex
	edges map[int64]map[int64]struct{}
}

func NewFriendshipRepository() *FriendshipRepository {
	return &FriendshipRepository{edges: make(map[int64]map[int64]struct{})}
}

func (r *FriendshipRepository) AddEdge(ctx context.Context, ownerID, targetID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets, ok := r.edges[ownerID]
	if !ok {
		targets = make(map[int64]struct{})
		r.edges[ownerID] = targets
	}
	if _, ok := targets[targetID]; ok {
		return fmt.Errorf("%w: %d -> %d", model.ErrAlreadyFriends, ownerID, targetID)
	}
	targets[targetID] = struct{}{}
	return nil
}

func (r *FriendshipRepository) RemoveEdge(ctx context.Context, ownerID, targetID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := r.edges[ownerID]
	if _, ok := targets[targetID]; !ok {
		return false, nil
	}
	delete(targets, targetID)
	if len(targets) == 0 {
		delete(r.edges, ownerID)
	}
	return true, nil
}

func (r *FriendshipRepository) HasEdge(ctx context.Context, ownerID, targetID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasEdgeLocked(ownerID, targetID), nil
}

func (r *FriendshipRepository) Targets(ctx context.Context, ownerID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.edges[ownerID])), nil
}

func (r *FriendshipRepository) Edges(ctx context.Context, ownerID int64) ([]model.Friendship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	targets := slices.Sorted(maps.Keys(r.edges[ownerID]))
	edges := make([]model.Friendship, 0, len(targets))
	for _, target := range targets {
		edges = append(edges, model.Friendship{
			OwnerID:   ownerID,
			TargetID:  target,
			Confirmed: r.hasEdgeLocked(target, ownerID),
		})
	}
	return edges, nil
}

func (r *FriendshipRepository) Mutual(ctx context.Context, a, b int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	other := r.edges[b]
	mutual := make([]int64, 0)
	for id := range r.edges[a] {
		if _, ok := other[id]; ok {
			mutual = append(mutual, id)
		}
	}
	slices.Sort(mutual)
	return mutual, nil
}

func (r *FriendshipRepository) hasEdgeLocked(ownerID, targetID int64) bool {
	_, ok := r.edges[ownerID][targetID]
	return ok
}
