package localstore

import (
	"context"
	"sync"
	"time"

	"github.com/msomdec/stockeye/internal/domain"
)

// ProductRepository implements domain.ProductRepository over a domain.Store.
type ProductRepository struct {
	mu    sync.Mutex
	store domain.Store
	now   func() time.Time
}

// NewProductRepository creates a ProductRepository backed by the given store.
func NewProductRepository(store domain.Store) *ProductRepository {
	return &ProductRepository{store: store, now: time.Now}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return readCollection[domain.Product](ctx, r.store, productsKey)
}

func (r *ProductRepository) Add(ctx context.Context, userID string, draft domain.ProductDraft) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := readCollection[domain.Product](ctx, r.store, productsKey)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		userID = domain.AnonymousUserID
	}

	product := domain.Product{
		ID:             newID(),
		Name:           draft.Name,
		Quantity:       draft.Quantity,
		ExpirationDate: draft.ExpirationDate,
		CreatedAt:      r.now().UTC(),
		UserID:         userID,
	}

	products = append(products, product)
	if err := writeCollection(ctx, r.store, productsKey, products); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := readCollection[domain.Product](ctx, r.store, productsKey)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}

		if upd.Name != nil {
			products[i].Name = *upd.Name
		}
		if upd.Quantity != nil {
			products[i].Quantity = *upd.Quantity
		}
		if upd.ExpirationDate != nil {
			products[i].ExpirationDate = *upd.ExpirationDate
		}

		if err := writeCollection(ctx, r.store, productsKey, products); err != nil {
			return nil, err
		}
		updated := products[i]
		return &updated, nil
	}

	// Nothing matched; the collection is not rewritten.
	return nil, domain.ErrNotFound
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := readCollection[domain.Product](ctx, r.store, productsKey)
	if err != nil {
		return err
	}

	filtered := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return writeCollection(ctx, r.store, productsKey, filtered)
}

func (r *ProductRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Delete(ctx, productsKey)
}
