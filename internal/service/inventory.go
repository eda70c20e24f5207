package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/stockeye/internal/domain"
)

// InventoryService handles product CRUD and the dashboard overview.
type InventoryService struct {
	products domain.ProductRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(products domain.ProductRepository) *InventoryService {
	return &InventoryService{products: products}
}

// List returns all products in insertion order.
func (s *InventoryService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// Add validates and stores a new product owned by userID.
func (s *InventoryService) Add(ctx context.Context, userID string, draft domain.ProductDraft) (*domain.Product, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if draft.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}
	if draft.ExpirationDate.IsZero() {
		return nil, fmt.Errorf("%w: expiration date is required", domain.ErrInvalidInput)
	}

	product, err := s.products.Add(ctx, userID, draft)
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	return product, nil
}

// Update validates the supplied fields and merges them into the product.
// Returns domain.ErrNotFound when the ID does not match any product.
func (s *InventoryService) Update(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, fmt.Errorf("%w: product name must not be empty", domain.ErrInvalidInput)
	}
	if upd.Quantity != nil && *upd.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}
	if upd.ExpirationDate != nil && upd.ExpirationDate.IsZero() {
		return nil, fmt.Errorf("%w: expiration date must not be empty", domain.ErrInvalidInput)
	}

	return s.products.Update(ctx, id, upd)
}

// Delete removes a product. Deleting an unknown ID is a no-op. Historical
// sales referencing the product are untouched.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// Overview is the dashboard payload: products ordered by urgency and the
// warning summary tallies.
type Overview struct {
	Products []domain.Product
	Summary  WarningSummary
}

// Overview returns the urgency-sorted product list with its warning summary,
// classified relative to now.
func (s *InventoryService) Overview(ctx context.Context, now time.Time) (*Overview, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return &Overview{
		Products: SortByUrgency(products, now),
		Summary:  Summarize(products, now),
	}, nil
}
