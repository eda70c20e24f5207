package localstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/msomdec/stockeye/internal/domain"
)

// SaleRepository implements domain.SaleRepository over a domain.Store.
type SaleRepository struct {
	mu    sync.Mutex
	store domain.Store
	now   func() time.Time
}

// NewSaleRepository creates a SaleRepository backed by the given store.
func NewSaleRepository(store domain.Store) *SaleRepository {
	return &SaleRepository{store: store, now: time.Now}
}

func (r *SaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return readCollection[domain.Sale](ctx, r.store, salesKey)
}

func (r *SaleRepository) Add(ctx context.Context, userID string, draft domain.SaleDraft) (*domain.Sale, error) {
	if draft.QuantitySold <= 0 {
		return nil, fmt.Errorf("%w: quantity sold must be positive", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := readCollection[domain.Sale](ctx, r.store, salesKey)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		userID = domain.AnonymousUserID
	}

	sale := domain.Sale{
		ID:           newID(),
		ProductID:    draft.ProductID,
		ProductName:  draft.ProductName,
		QuantitySold: draft.QuantitySold,
		SaleDate:     r.now().UTC(),
		UserID:       userID,
	}

	sales = append(sales, sale)
	if err := writeCollection(ctx, r.store, salesKey, sales); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *SaleRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Delete(ctx, salesKey)
}
