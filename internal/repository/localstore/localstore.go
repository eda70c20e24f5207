// Package localstore implements the product, sale, and current-user
// repositories on top of an injected domain.Store. Each collection lives
// under a single key as one JSON document; every operation re-reads the whole
// collection, mutates it in memory, and writes it back. A per-repository
// mutex keeps that read-modify-write cycle atomic now that the repositories
// sit behind an HTTP boundary.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/msomdec/stockeye/internal/domain"
)

// Storage keys. The prefix scopes the records to this application within a
// shared store.
const (
	userKey     = "stockeye_user"
	productsKey = "stockeye_products"
	salesKey    = "stockeye_sales"
)

// newID returns a time-ordered unique ID. UUIDv7 embeds a millisecond
// timestamp, so IDs generated by sequential calls sort in creation order and
// cannot collide.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// readCollection loads and decodes the collection stored under key. A missing
// key decodes as an empty collection, never an error.
func readCollection[T any](ctx context.Context, store domain.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// writeCollection encodes and persists the whole collection under key.
func writeCollection[T any](ctx context.Context, store domain.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
