package instrument

import (
	"context"

	"github.com/google/uuid"

	"github.com/furnace-io/furnace-go/schema"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const runIDKey contextKey = "runID"

// RunID returns middleware that injects a unique run ID into the context.
// If a run ID already exists in the context, it is preserved.
func RunID() Middleware {
	return RunIDWithGenerator(uuid.NewString)
}

// RunIDWithGenerator returns middleware that uses a custom ID generator.
func RunIDWithGenerator(generator func() string) Middleware {
	return func(next InferFunc) InferFunc {
		return func(ctx context.Context, examples []any) (*schema.Schema, error) {
			if existing := RunIDFromContext(ctx); existing != "" {
				return next(ctx, examples)
			}

			ctx = ContextWithRunID(ctx, generator())
			return next(ctx, examples)
		}
	}
}

// RunIDFromContext returns the run ID from the context, or empty string if
// not set.
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// ContextWithRunID returns a new context with the run ID set.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}
