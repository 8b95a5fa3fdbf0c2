package cart

import (
	"context"
	"errors"
)

// Store keeps one cart per interactive session.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Set(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

var ErrNotFound = errors.New("cart not found")
