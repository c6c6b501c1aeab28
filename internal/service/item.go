package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stockpile/backend/internal/model"
	"github.com/stockpile/backend/internal/store"
)

var (
	// ErrNotFound means no item with the requested id exists at all.
	ErrNotFound = errors.New("item not found")
	// ErrForbidden means the item exists but belongs to a different owner.
	// The two must stay distinguishable.
	ErrForbidden = errors.New("not the owner")
)

type ItemService struct {
	items store.Items
	now   func() time.Time
}

func NewItemService(items store.Items) *ItemService {
	return &ItemService{items: items, now: time.Now}
}

func (s *ItemService) Create(ctx context.Context, owner string, req model.ItemRequest) (*model.Item, error) {
	if err := validateItem(req); err != nil {
		return nil, err
	}

	return s.items.Create(ctx, &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Owner:       owner,
		CreatedAt:   s.now(),
	})
}

func (s *ItemService) List(ctx context.Context, owner string) ([]model.Item, error) {
	return s.items.ListByOwner(ctx, owner)
}

func (s *ItemService) Get(ctx context.Context, owner string, id int64) (*model.Item, error) {
	return s.getOwned(ctx, owner, id)
}

// Update replaces the mutable fields (name, description, price); id, owner
// and created_at never change.
func (s *ItemService) Update(ctx context.Context, owner string, id int64, req model.ItemRequest) (*model.Item, error) {
	if err := validateItem(req); err != nil {
		return nil, err
	}

	item, err := s.getOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, owner string, id int64) error {
	if _, err := s.getOwned(ctx, owner, id); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// getOwned checks existence before ownership so that a missing id surfaces
// as NotFound while someone else's id surfaces as Forbidden.
func (s *ItemService) getOwned(ctx context.Context, owner string, id int64) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.Owner != owner {
		return nil, ErrForbidden
	}
	return item, nil
}

func validateItem(req model.ItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidInput
	}
	if req.Price < 0 {
		return ErrInvalidInput
	}
	return nil
}
