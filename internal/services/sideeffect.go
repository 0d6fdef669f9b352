package services

import (
	"context"
	"log/slog"
)

// attempt runs a best-effort side effect. A failure is logged and reported to
// the caller as false but never propagated: once the primary write of a
// workflow has succeeded, no secondary effect may abort it. Every swallowed
// side-effect failure in this package goes through here.
func attempt(ctx context.Context, logger *slog.Logger, effect string, fn func() error) bool {
	if err := fn(); err != nil {
		logger.ErrorContext(ctx, "side effect failed", "effect", effect, "err", err)
		return false
	}
	return true
}
