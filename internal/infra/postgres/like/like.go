package infra_postgres_like

import (
	"context"
	"fmt"

	infra_pg_errors "github.com/ZeNuW/filmorate/internal/infra/postgres/pgerr"
	"github.com/jmoiron/sqlx"
)

type countDB struct {
	FilmID int64 `db:"film_id"`
	Likes  int   `db:"likes"`
}

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(ctx context.Context, filmID, userID int64) (bool, error) {
	query := `
		INSERT INTO film_likes (film_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (film_id, user_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, filmID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", infra_pg_errors.Map(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *Repository) Remove(ctx context.Context, filmID, userID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`, filmID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *Repository) Count(ctx context.Context, filmID int64) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM film_likes WHERE film_id = $1`, filmID); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

// Counts omits films without likes.
func (r *Repository) Counts(ctx context.Context, filmIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(filmIDs))
	if len(filmIDs) == 0 {
		return counts, nil
	}

	query, args, err := sqlx.In(`
		SELECT film_id, COUNT(*) AS likes
		FROM film_likes
		WHERE film_id IN (?)
		GROUP BY film_id
	`, filmIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []countDB
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query like counts: %w", err)
	}
	for _, row := range rows {
		counts[row.FilmID] = row.Likes
	}
	return counts, nil
}
