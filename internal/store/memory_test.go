package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stockpile/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAccountsDuplicate(t *testing.T) {
	s := NewMemoryAccounts()
	ctx := context.Background()

	_, err := s.Create(ctx, &model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = s.Create(ctx, &model.User{Username: "alice", Email: "b@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	stored, err := s.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestMemoryAccountsNotFound(t *testing.T) {
	s := NewMemoryAccounts()

	_, err := s.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryAccountsReturnsCopy(t *testing.T) {
	s := NewMemoryAccounts()
	ctx := context.Background()

	_, err := s.Create(ctx, &model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	first, err := s.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	first.Email = "tampered@x.com"

	second, err := s.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", second.Email)
}

func TestMemoryItemsMonotonicIDs(t *testing.T) {
	s := NewMemoryItems()
	ctx := context.Background()

	first, err := s.Create(ctx, &model.Item{Name: "Pen", Owner: "alice"})
	require.NoError(t, err)
	second, err := s.Create(ctx, &model.Item{Name: "Mug", Owner: "alice"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	// Deleting must not free the id for reuse.
	require.NoError(t, s.Delete(ctx, second.ID))
	third, err := s.Create(ctx, &model.Item{Name: "Book", Owner: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestMemoryItemsListInsertionOrder(t *testing.T) {
	s := NewMemoryItems()
	ctx := context.Background()

	names := []string{"Pen", "Mug", "Book"}
	for _, name := range names {
		_, err := s.Create(ctx, &model.Item{Name: name, Owner: "alice"})
		require.NoError(t, err)
	}

	list, err := s.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}

func TestMemoryItemsConcurrentCreateUniqueIDs(t *testing.T) {
	s := NewMemoryItems()
	ctx := context.Background()

	const n = 100
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := s.Create(ctx, &model.Item{Name: "Pen", Owner: "alice"})
			if err != nil {
				t.Error(err)
				return
			}
			ids <- item.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryItemsUpdateAndDeleteMissing(t *testing.T) {
	s := NewMemoryItems()
	ctx := context.Background()

	_, err := s.Update(ctx, &model.Item{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = s.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
