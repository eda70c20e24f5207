package domain

import "context"

// Store is key-based persistent storage of serialized records. It is the only
// owner of the stored representation; repositories read whole values, mutate
// them in memory, and write them back.
//
// Get returns ok=false for a missing key, never an error. A backend that is
// unreachable should degrade reads to absent rather than failing, so callers
// can treat "no data yet" and "no storage" identically.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
