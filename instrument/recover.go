package instrument

import (
	"context"
	"fmt"

	"github.com/furnace-io/furnace-go/schema"
)

// PanicHandler is called when a panic is recovered.
type PanicHandler func(ctx context.Context, examples []any, panicVal any) (*schema.Schema, error)

// Recover returns middleware that catches panics and converts them to errors.
// The panic value is included in the error message for debugging.
func Recover() Middleware {
	return RecoverWithHandler(defaultPanicHandler)
}

// RecoverWithHandler returns middleware that catches panics and calls the
// provided handler. This allows for custom panic handling such as logging
// or alerting.
func RecoverWithHandler(handler PanicHandler) Middleware {
	return func(next InferFunc) InferFunc {
		return func(ctx context.Context, examples []any) (s *schema.Schema, err error) {
			defer func() {
				if r := recover(); r != nil {
					s, err = handler(ctx, examples, r)
				}
			}()
			return next(ctx, examples)
		}
	}
}

// defaultPanicHandler converts a panic value to an error.
func defaultPanicHandler(_ context.Context, _ []any, panicVal any) (*schema.Schema, error) {
	switch v := panicVal.(type) {
	case error:
		return nil, fmt.Errorf("panic: %w", v)
	case string:
		return nil, fmt.Errorf("panic: %s", v)
	default:
		return nil, fmt.Errorf("panic: %v", v)
	}
}
