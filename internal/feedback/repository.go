package feedback

import "context"

// Repository is the append-only feedback sink.
type Repository interface {
	Insert(ctx context.Context, fb *Feedback) error

	// ListAll returns every feedback row, most recent first.
	// An empty sink yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]*Feedback, error)
}
