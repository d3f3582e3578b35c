package infra_postgres_friendship

import (
	"context"
	"fmt"

	infra_pg_errors "github.com/ZeNuW/filmorate/internal/infra/postgres/pgerr"
	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/jmoiron/sqlx"
)

type EdgeDB struct {
	OwnerID   int64 `db:"owner_id"`
	TargetID  int64 `db:"target_id"`
	Confirmed bool  `db:"confirmed"`
}

func (e EdgeDB) ToDomain() model.Friendship {
	return model.Friendship{
		OwnerID:   e.OwnerID,
		TargetID:  e.TargetID,
		Confirmed: e.Confirmed,
	}
}

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AddEdge(ctx context.Context, ownerID, targetID int64) error {
	query := `
		INSERT INTO friendships (owner_id, target_id)
		VALUES ($1, $2)
		ON CONFLICT (owner_id, target_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, ownerID, targetID)
	if err != nil {
		return fmt.Errorf("failed to insert friendship: %w", infra_pg_errors.Map(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %d -> %d", model.ErrAlreadyFriends, ownerID, targetID)
	}
	return nil
}

func (r *Repository) RemoveEdge(ctx context.Context, ownerID, targetID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM friendships WHERE owner_id = $1 AND target_id = $2`, ownerID, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to delete friendship: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *Repository) HasEdge(ctx context.Context, ownerID, targetID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM friendships WHERE owner_id = $1 AND target_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, ownerID, targetID); err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return exists, nil
}

func (r *Repository) Targets(ctx context.Context, ownerID int64) ([]int64, error) {
	targets := make([]int64, 0)
	query := `SELECT target_id FROM friendships WHERE owner_id = $1 ORDER BY target_id`
	if err := r.db.SelectContext(ctx, &targets, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to query friend ids: %w", err)
	}
	return targets, nil
}

// Edges reports an edge as confirmed when the reverse edge exists.
func (r *Repository) Edges(ctx context.Context, ownerID int64) ([]model.Friendship, error) {
	query := `
		SELECT f.owner_id, f.target_id,
		       EXISTS (
		           SELECT 1 FROM friendships r
		           WHERE r.owner_id = f.target_id AND r.target_id = f.owner_id
		       ) AS confirmed
		FROM friendships f
		WHERE f.owner_id = $1
		ORDER BY f.target_id
	`
	var edgesDB []EdgeDB
	if err := r.db.SelectContext(ctx, &edgesDB, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to query friendships: %w", err)
	}

	edges := make([]model.Friendship, len(edgesDB))
	for i, e := range edgesDB {
		edges[i] = e.ToDomain()
	}
	return edges, nil
}

func (r *Repository) Mutual(ctx context.Context, a, b int64) ([]int64, error) {
	query := `
		SELECT fa.target_id
		FROM friendships fa
		JOIN friendships fb ON fb.target_id = fa.target_id
		WHERE fa.owner_id = $1 AND fb.owner_id = $2
		ORDER BY fa.target_id
	`
	mutual := make([]int64, 0)
	if err := r.db.SelectContext(ctx, &mutual, query, a, b); err != nil {
		return nil, fmt.Errorf("failed to query mutual friends: %w", err)
	}
	return mutual, nil
}
