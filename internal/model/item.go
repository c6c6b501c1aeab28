package model

import "time"

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemRequest is the payload for both create and update; update replaces
// every mutable field, so an omitted description clears it.
type ItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
