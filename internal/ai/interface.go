package ai

import (
	"context"
)

// Completer sends a single prompt to a completion model and returns the reply text.
// Implementations return ErrMissingAPIKey, *DecodeError or *ShapeError so callers can
// tell a configuration problem apart from a broken upstream contract.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
