package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
)

// Service validates cart mutations against the menu and owns the
// session → cart mapping through a Store backend.
type Service struct {
	store Store
	menu  *catalog.Catalog
}

func NewService(store Store, menu *catalog.Catalog) *Service {
	return &Service{store: store, menu: menu}
}

// Get returns the session's cart, or a fresh empty one.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		return New(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity upserts one entry and persists the cart.
func (s *Service) SetQuantity(
	ctx context.Context,
	sessionID string,
	item string,
	qty int,
) (*Cart, error) {

	if !s.menu.Has(item) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownItem, item)
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetQuantity(item, qty); err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Total prices the session's cart against the current catalog.
func (s *Service) Total(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Total(s.menu)
}

// Clear drops the session's cart entirely.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
