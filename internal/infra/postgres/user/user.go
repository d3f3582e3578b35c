package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	infra_pg_errors "github.com/ZeNuW/filmorate/internal/infra/postgres/pgerr"
	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const selectUsers = `SELECT user_id, email, login, name, birthday FROM users`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, u model.User) error {
	query := `
		INSERT INTO users (user_id, email, login, name, birthday)
		VALUES (:user_id, :email, :login, :name, :birthday)
	`
	if _, err := r.db.NamedExecContext(ctx, query, FromDomain(u)); err != nil {
		return fmt.Errorf("failed to store user: %w", infra_pg_errors.Map(err))
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, u model.User) error {
	query := `
		UPDATE users
		SET email = :email, login = :login, name = :name, birthday = :birthday
		WHERE user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, FromDomain(u))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", infra_pg_errors.Map(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: user %d", model.ErrNotFound, u.ID)
	}
	return nil
}

func (r *Repository) LoadByID(ctx context.Context, id int64) (model.User, error) {
	var userDB UserDB
	if err := r.db.GetContext(ctx, &userDB, selectUsers+` WHERE user_id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("%w: user %d", model.ErrNotFound, id)
		}
		return model.User{}, fmt.Errorf("failed to load user by id: %w", err)
	}
	return userDB.ToDomain(), nil
}

func (r *Repository) LoadByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}

	var usersDB []UserDB
	query := selectUsers + ` WHERE user_id = ANY($1) ORDER BY user_id`
	if err := r.db.SelectContext(ctx, &usersDB, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to query users by ids: %w", err)
	}
	return toDomainList(usersDB), nil
}

func (r *Repository) Load(ctx context.Context) ([]model.User, error) {
	var usersDB []UserDB
	if err := r.db.SelectContext(ctx, &usersDB, selectUsers+` ORDER BY user_id`); err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return toDomainList(usersDB), nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

func (r *Repository) MaxID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.GetContext(ctx, &id, `SELECT COALESCE(MAX(user_id), 0) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to query max user id: %w", err)
	}
	return id, nil
}
