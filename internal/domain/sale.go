package domain

import (
	"context"
	"time"
)

// Sale is one recorded sale event. ProductName is a snapshot taken at sale
// time, so the sale log stays readable after the product is renamed or
// deleted; there is no foreign-key relationship back to the product.
type Sale struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int       `json:"quantity_sold"`
	SaleDate     time.Time `json:"sale_date"`
	UserID       string    `json:"user_id"`
}

// SaleDraft carries the caller-supplied fields for a new sale.
type SaleDraft struct {
	ProductID    string
	ProductName  string
	QuantitySold int
}

// SaleRepository persists the append-only sale log. Sales are never updated
// or deleted individually; Clear exists only for the destructive sign-out.
type SaleRepository interface {
	// List returns all sales in insertion order.
	List(ctx context.Context) ([]Sale, error)

	// Add appends a new sale stamped with a fresh ID, the current time, and
	// the given owner (AnonymousUserID when empty). QuantitySold must be a
	// positive integer.
	Add(ctx context.Context, userID string, draft SaleDraft) (*Sale, error)

	// Clear removes the whole log. Used by the destructive sign-out.
	Clear(ctx context.Context) error
}
