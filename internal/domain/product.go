package domain

import (
	"context"
	"time"
)

// Product is a tracked inventory item. The JSON tags fix the stored
// representation owned by the Store.
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	ExpirationDate Date      `json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         string    `json:"user_id"`
}

// ProductDraft carries the caller-supplied fields for a new product.
type ProductDraft struct {
	Name           string
	Quantity       int
	ExpirationDate Date
}

// ProductUpdate is a partial update: only non-nil fields are merged into the
// existing record.
type ProductUpdate struct {
	Name           *string
	Quantity       *int
	ExpirationDate *Date
}

// ProductRepository persists the product collection. Implementations treat
// each operation as one atomic read-modify-write of the whole collection.
type ProductRepository interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]Product, error)

	// Add appends a new product stamped with a fresh ID, the current time,
	// and the given owner (AnonymousUserID when empty).
	Add(ctx context.Context, userID string, draft ProductDraft) (*Product, error)

	// Update merges the supplied fields into the product with the given ID.
	// Returns ErrNotFound and leaves the collection untouched when no record
	// matches.
	Update(ctx context.Context, id string, upd ProductUpdate) (*Product, error)

	// Delete removes the product with the given ID. Deleting an absent ID is
	// a no-op, not an error.
	Delete(ctx context.Context, id string) error

	// Clear removes the whole collection. Used by the destructive sign-out.
	Clear(ctx context.Context) error
}
