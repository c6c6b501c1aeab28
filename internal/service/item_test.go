package service

import (
	"context"
	"testing"

	"github.com/stockpile/backend/internal/model"
	"github.com/stockpile/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItemService() *ItemService {
	return NewItemService(store.NewMemoryItems())
}

func TestCreateAssignsIDOwnerAndTimestamp(t *testing.T) {
	svc := newTestItemService()
	ctx := context.Background()

	item, err := svc.Create(ctx, "alice", model.ItemRequest{Name: "Pen", Price: 1.50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "alice", item.Owner)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	svc := newTestItemService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", model.ItemRequest{Name: "", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, "alice", model.ItemRequest{Name: "Pen", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListIsOwnerScoped(t *testing.T) {
	svc := newTestItemService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", model.ItemRequest{Name: "Pen", Price: 1.50})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", model.ItemRequest{Name: "Mug", Price: 4})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", model.ItemRequest{Name: "Book", Price: 10})
	require.NoError(t, err)

	aliceItems, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceItems, 2)
	assert.Equal(t, "Pen", aliceItems[0].Name)
	assert.Equal(t, "Book", aliceItems[1].Name)
	for _, item := range aliceItems {
		assert.Equal(t, "alice", item.Owner)
	}

	carolItems, err := svc.List(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, carolItems)
}

func TestGetDistinguishesNotFoundFromForbidden(t *testing.T) {
	svc := newTestItemService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", model.ItemRequest{Name: "Pen", Price: 1.50})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "alice", 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetRoundTripIsStable(t *testing.T) {
	svc := newTestItemService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", model.ItemRequest{
		Name: "Pen", Description: "blue ink", Price: 1.50,
	})
	require.NoError(t, err)

	first, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, first)
	assert.Equal(t, first, second)
}

func TestUpdateReplacesMutableFieldsOnly(t *testing.T) {
	svc := newTestItemService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", model.ItemRequest{
		Name: "Pen", Description: "blue ink", Price: 1.50,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "alice", created.ID, model.ItemRequest{
		Name: "Pencil", Price: 0.75,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "alice", updated.Owner)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Pencil", updated.Name)
	assert.Empty(t, updated.Description)
	assert.Equal(t, 0.75, updated.Price)

	_, err = svc.Update(ctx, "bob", created.ID, model.ItemRequest{Name: "Theft", Price: 0})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, "alice", 999, model.ItemRequest{Name: "Ghost", Price: 0})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsTerminal(t *testing.T) {
	svc := newTestItemService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", model.ItemRequest{Name: "Pen", Price: 1.50})
	require.NoError(t, err)

	err = svc.Delete(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(ctx, "alice", created.ID))

	// After deletion the id no longer exists for anyone, so the error is
	// NotFound, not Forbidden.
	_, err = svc.Get(ctx, "alice", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "alice", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
