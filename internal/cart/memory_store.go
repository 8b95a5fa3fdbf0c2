package cart

import (
	"context"
	"sync"
)

// MemoryStore implements Store with in-process storage. It is the default
// backend for a single-binary deployment; carts vanish on restart, which
// matches the session-scoped lifecycle of a cart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*Cart),
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return nil, ErrNotFound
	}

	return copyCart(cart), nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID string, cart *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = copyCart(cart)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// copyCart keeps callers from mutating the stored map through a shared pointer.
func copyCart(cart *Cart) *Cart {
	items := make(map[string]int, len(cart.Items))
	for item, qty := range cart.Items {
		items[item] = qty
	}

	return &Cart{
		SessionID: cart.SessionID,
		Items:     items,
		UpdatedAt: cart.UpdatedAt,
	}
}
