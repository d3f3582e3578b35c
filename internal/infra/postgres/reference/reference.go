package infra_postgres_reference

import (
	"context"
	"fmt"

	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/jmoiron/sqlx"
)

type GenreDB struct {
	ID   int64  `db:"genre_id"`
	Name string `db:"name"`
}

type MpaDB struct {
	ID   int64  `db:"mpa_id"`
	Name string `db:"name"`
}

// Source reads the genre and rating dictionaries seeded by the schema.
type Source struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Source {
	return &Source{db: db}
}

func (s *Source) LoadGenres(ctx context.Context) ([]model.Genre, error) {
	var rows []GenreDB
	if err := s.db.SelectContext(ctx, &rows, `SELECT genre_id, name FROM genres ORDER BY genre_id`); err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}

	genres := make([]model.Genre, len(rows))
	for i, g := range rows {
		genres[i] = model.Genre{ID: g.ID, Name: g.Name}
	}
	return genres, nil
}

func (s *Source) LoadMpa(ctx context.Context) ([]model.Mpa, error) {
	var rows []MpaDB
	if err := s.db.SelectContext(ctx, &rows, `SELECT mpa_id, name FROM mpa ORDER BY mpa_id`); err != nil {
		return nil, fmt.Errorf("failed to query mpa: %w", err)
	}

	ratings := make([]model.Mpa, len(rows))
	for i, m := range rows {
		ratings[i] = model.Mpa{ID: m.ID, Name: m.Name}
	}
	return ratings, nil
}
