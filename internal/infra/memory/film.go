// Package infra_memory keeps entities and relations in process memory. Every
// repository guards its maps with its own RWMutex.
package infra_memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ZeNuW/filmorate/internal/model"
)

type FilmRepository struct {
	mu    sync.RWMutex
	films map[int64]model.Film
}

func NewFilmRepository() *FilmRepository {
	return &FilmRepository{films: make(map[int64]model.Film)}
}

func (r *FilmRepository) Store(ctx context.Context, f model.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.films[f.ID]; ok {
		return fmt.Errorf("%w: film %d", model.ErrAlreadyExists, f.ID)
	}
	r.films[f.ID] = cloneFilm(f)
	return nil
}

func (r *FilmRepository) Update(ctx context.Context, f model.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.films[f.ID]; !ok {
		return fmt.Errorf("%w: film %d", model.ErrNotFound, f.ID)
	}
	r.films[f.ID] = cloneFilm(f)
	return nil
}

func (r *FilmRepository) LoadByID(ctx context.Context, id int64) (model.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.films[id]
	if !ok {
		return model.Film{}, fmt.Errorf("%w: film %d", model.ErrNotFound, id)
	}
	return cloneFilm(f), nil
}

func (r *FilmRepository) Load(ctx context.Context) ([]model.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	films := make([]model.Film, 0, len(r.films))
	for _, id := range slices.Sorted(maps.Keys(r.films)) {
		films = append(films, cloneFilm(r.films[id]))
	}
	return films, nil
}

func (r *FilmRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.films[id]
	return ok, nil
}

func (r *FilmRepository) MaxID(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maxKey(r.films), nil
}

func cloneFilm(f model.Film) model.Film {
	f.Genres = slices.Clone(f.Genres)
	f.Rate = 0
	return f
}

func maxKey[V any](m map[int64]V) int64 {
	var top int64
	for id := range m {
		if id > top {
			top = id
		}
	}
	return top
}
