// Package store holds the persistence interfaces and their two
// implementations: a mutex-guarded in-memory store (the default) and a
// PostgreSQL store backed by pgx. Services receive the interfaces, never a
// concrete backend.
package store

import (
	"context"
	"errors"

	"github.com/stockpile/backend/internal/model"
)

var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrAccountNotFound   = errors.New("account not found")
	ErrItemNotFound      = errors.New("item not found")
)

type Accounts interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// Items is intentionally unscoped by owner on GetByID: the service layer
// needs the raw record to distinguish "no such item" from "someone else's
// item".
type Items interface {
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Item, error)
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	Update(ctx context.Context, item *model.Item) (*model.Item, error)
	Delete(ctx context.Context, id int64) error
}
