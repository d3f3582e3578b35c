package infra_postgres_film

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	infra_pg_errors "github.com/ZeNuW/filmorate/internal/infra/postgres/pgerr"
	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/jmoiron/sqlx"
)

const selectFilms = `
	SELECT f.film_id, f.name, f.description, f.release_date, f.duration, f.mpa_id, m.name AS mpa_name
	FROM films f
	JOIN mpa m ON m.mpa_id = f.mpa_id
`

const selectFilmGenres = `
	SELECT fg.film_id, g.genre_id, g.name
	FROM film_genres fg
	JOIN genres g ON g.genre_id = fg.genre_id
`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, f model.Film) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO films (film_id, name, description, release_date, duration, mpa_id)
		VALUES (:film_id, :name, :description, :release_date, :duration, :mpa_id)
	`
	if _, err := tx.NamedExecContext(ctx, query, FromDomain(f)); err != nil {
		return fmt.Errorf("failed to store film: %w", infra_pg_errors.Map(err))
	}

	if err := insertGenres(ctx, tx, f); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, f model.Film) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE films
		SET name = :name, description = :description, release_date = :release_date,
			duration = :duration, mpa_id = :mpa_id
		WHERE film_id = :film_id
	`
	result, err := tx.NamedExecContext(ctx, query, FromDomain(f))
	if err != nil {
		return fmt.Errorf("failed to update film: %w", infra_pg_errors.Map(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: film %d", model.ErrNotFound, f.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM film_genres WHERE film_id = $1`, f.ID); err != nil {
		return fmt.Errorf("failed to clear film genres: %w", err)
	}
	if err := insertGenres(ctx, tx, f); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) LoadByID(ctx context.Context, id int64) (model.Film, error) {
	var filmDB FilmDB
	err := r.db.GetContext(ctx, &filmDB, selectFilms+` WHERE f.film_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Film{}, fmt.Errorf("%w: film %d", model.ErrNotFound, id)
		}
		return model.Film{}, fmt.Errorf("failed to load film by id: %w", err)
	}

	var genresDB []FilmGenreDB
	err = r.db.SelectContext(ctx, &genresDB, selectFilmGenres+` WHERE fg.film_id = $1 ORDER BY g.genre_id`, id)
	if err != nil {
		return model.Film{}, fmt.Errorf("failed to load film genres: %w", err)
	}

	return filmDB.ToDomain(groupGenres(genresDB)[id]), nil
}

func (r *Repository) Load(ctx context.Context) ([]model.Film, error) {
	var filmsDB []FilmDB
	if err := r.db.SelectContext(ctx, &filmsDB, selectFilms+` ORDER BY f.film_id`); err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}

	var genresDB []FilmGenreDB
	if err := r.db.SelectContext(ctx, &genresDB, selectFilmGenres+` ORDER BY fg.film_id, g.genre_id`); err != nil {
		return nil, fmt.Errorf("failed to query film genres: %w", err)
	}
	genres := groupGenres(genresDB)

	films := make([]model.Film, len(filmsDB))
	for i := range filmsDB {
		films[i] = filmsDB[i].ToDomain(genres[filmsDB[i].ID])
	}
	return films, nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM films WHERE film_id = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check film: %w", err)
	}
	return exists, nil
}

func (r *Repository) MaxID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.GetContext(ctx, &id, `SELECT COALESCE(MAX(film_id), 0) FROM films`); err != nil {
		return 0, fmt.Errorf("failed to query max film id: %w", err)
	}
	return id, nil
}

func insertGenres(ctx context.Context, tx *sqlx.Tx, f model.Film) error {
	for _, id := range f.GenreIDs() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO film_genres (film_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			f.ID, id,
		)
		if err != nil {
			return fmt.Errorf("failed to store film genre: %w", infra_pg_errors.Map(err))
		}
	}
	return nil
}
