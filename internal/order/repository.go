package order

import "context"

// Repository is the append-only receipt sink.
type Repository interface {

	// Insert persists one receipt. A single atomic insert per checkout;
	// failures must leave the sink unchanged.
	Insert(ctx context.Context, receipt *Receipt) error

	// ListAll returns every receipt, most recent first.
	// An empty sink yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]*Receipt, error)
}
