package store

import (
	"context"
	"sync"

	"github.com/stockpile/backend/internal/model"
)

// MemoryAccounts is an in-process account store. A single RWMutex guards the
// map; fine for the expected request volume.
type MemoryAccounts struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{users: make(map[string]model.User)}
}

func (s *MemoryAccounts) Create(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return nil, ErrDuplicateUsername
	}
	s.users[user.Username] = *user

	created := *user
	return &created, nil
}

func (s *MemoryAccounts) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &user, nil
}

// MemoryItems keeps items in insertion order and assigns ids from a
// monotonically increasing counter. The mutex makes id assignment and
// mutation safe under concurrent handlers.
type MemoryItems struct {
	mu     sync.RWMutex
	items  []model.Item
	nextID int64
}

func NewMemoryItems() *MemoryItems {
	return &MemoryItems{nextID: 1}
}

func (s *MemoryItems) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *item
	stored.ID = s.nextID
	s.nextID++
	s.items = append(s.items, stored)

	created := stored
	return &created, nil
}

func (s *MemoryItems) ListByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := []model.Item{}
	for _, item := range s.items {
		if item.Owner == owner {
			list = append(list, item)
		}
	}
	return list, nil
}

func (s *MemoryItems) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *MemoryItems) Update(ctx context.Context, item *model.Item) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			updated := *item
			return &updated, nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *MemoryItems) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}
