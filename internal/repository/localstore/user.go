package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/msomdec/stockeye/internal/domain"
)

// UserStore implements domain.UserStore over a domain.Store. The store holds
// at most one current-user record.
type UserStore struct {
	mu    sync.Mutex
	store domain.Store
}

// NewUserStore creates a UserStore backed by the given store.
func NewUserStore(store domain.Store) *UserStore {
	return &UserStore{store: store}
}

func (s *UserStore) Current(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", userKey, err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode %s: %w", userKey, err)
	}
	return &user, nil
}

func (s *UserStore) SetCurrent(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode %s: %w", userKey, err)
	}
	if err := s.store.Set(ctx, userKey, raw); err != nil {
		return fmt.Errorf("write %s: %w", userKey, err)
	}
	return nil
}

func (s *UserStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, userKey)
}
