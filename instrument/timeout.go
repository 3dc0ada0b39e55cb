package instrument

import (
	"context"
	"time"

	"github.com/furnace-io/furnace-go/schema"
)

// Timeout returns middleware that enforces a deadline on an inference
// run. If the run does not complete within the specified duration, the
// context is cancelled and context.DeadlineExceeded is observable by
// any middleware or InferFunc that honors the context.
func Timeout(d time.Duration) Middleware {
	return func(next InferFunc) InferFunc {
		return func(ctx context.Context, examples []any) (*schema.Schema, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, examples)
		}
	}
}
