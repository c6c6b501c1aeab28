package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpile/backend/internal/model"
)

type PostgresItems struct {
	pool *pgxpool.Pool
}

func NewPostgresItems(pool *pgxpool.Pool) *PostgresItems {
	return &PostgresItems{pool: pool}
}

func (r *PostgresItems) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	query := `
		INSERT INTO items (name, description, price, owner, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, price, owner, created_at
	`
	var created model.Item
	err := r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Price,
		item.Owner,
		item.CreatedAt,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.Price,
		&created.Owner,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PostgresItems) ListByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	query := `
		SELECT id, name, description, price, owner, created_at
		FROM items
		WHERE owner = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Owner,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *PostgresItems) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	query := `
		SELECT id, name, description, price, owner, created_at
		FROM items
		WHERE id = $1
	`
	var item model.Item
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Owner,
		&item.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresItems) Update(ctx context.Context, item *model.Item) (*model.Item, error) {
	query := `
		UPDATE items
		SET name = $2, description = $3, price = $4
		WHERE id = $1
		RETURNING id, name, description, price, owner, created_at
	`
	var updated model.Item
	err := r.pool.QueryRow(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.Price,
		&updated.Owner,
		&updated.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *PostgresItems) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
