package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/stockeye/internal/domain"
)

// SalesService handles quantity adjustments, sale recording, and sales
// statistics.
type SalesService struct {
	sales    domain.SaleRepository
	products domain.ProductRepository
}

// NewSalesService creates a new SalesService.
func NewSalesService(sales domain.SaleRepository, products domain.ProductRepository) *SalesService {
	return &SalesService{sales: sales, products: products}
}

// AdjustQuantity sets a product's stock level without recording a sale (the
// +/- correction flow). Returns domain.ErrNotFound for an unknown product.
func (s *SalesService) AdjustQuantity(ctx context.Context, id string, quantity int) (*domain.Product, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}
	return s.products.Update(ctx, id, domain.ProductUpdate{Quantity: &quantity})
}

// SaleResult reports what a recorded sale actually did: the sale as stored
// and the product with its decremented stock.
type SaleResult struct {
	Sale    *domain.Sale
	Product *domain.Product
}

// RecordSale sells up to quantity units of a product: it decrements the
// stock and appends a sale with the product name snapshotted. The quantity is
// clamped to the available stock, so the sale log never records more units
// than the product held; selling from an empty product fails with
// domain.ErrOutOfStock.
func (s *SalesService) RecordSale(ctx context.Context, userID string, productID string, quantity int) (*SaleResult, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Quantity == 0 {
		return nil, fmt.Errorf("%w: %s has no stock left", domain.ErrOutOfStock, product.Name)
	}

	sold := min(quantity, product.Quantity)
	remaining := product.Quantity - sold

	updated, err := s.products.Update(ctx, productID, domain.ProductUpdate{Quantity: &remaining})
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}

	sale, err := s.sales.Add(ctx, userID, domain.SaleDraft{
		ProductID:    product.ID,
		ProductName:  product.Name,
		QuantitySold: sold,
	})
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}

	return &SaleResult{Sale: sale, Product: updated}, nil
}

// List returns the sale log in insertion order.
func (s *SalesService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.List(ctx)
}

// Stats aggregates the sale log relative to now.
func (s *SalesService) Stats(ctx context.Context, now time.Time) (SalesStats, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return SalesStats{}, fmt.Errorf("list sales: %w", err)
	}
	return ComputeStats(sales, now), nil
}

func (s *SalesService) findProduct(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
