package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpile/backend/internal/model"
)

type PostgresAccounts struct {
	pool *pgxpool.Pool
}

func NewPostgresAccounts(pool *pgxpool.Pool) *PostgresAccounts {
	return &PostgresAccounts{pool: pool}
}

func (r *PostgresAccounts) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO accounts (username, email, display_name, password_hash, disabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING username, email, display_name, password_hash, disabled, created_at
	`
	var created model.User
	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.Disabled,
		user.CreatedAt,
	).Scan(
		&created.Username,
		&created.Email,
		&created.DisplayName,
		&created.PasswordHash,
		&created.Disabled,
		&created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &created, nil
}

func (r *PostgresAccounts) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT username, email, display_name, password_hash, disabled, created_at
		FROM accounts
		WHERE username = $1
	`
	var user model.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Disabled,
		&user.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}
