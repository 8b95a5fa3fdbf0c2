package llm

import (
	"context"
	"errors"
)

// ErrUnavailable covers every failure of the external completion service:
// network errors, timeouts, non-200 responses, empty completions.
var ErrUnavailable = errors.New("AI service unavailable")

// Client is one round trip to a hosted chat-completion service.
type Client interface {
	Chat(ctx context.Context, system string, user string) (string, error)
}
