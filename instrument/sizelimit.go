package instrument

import (
	"context"
	"fmt"

	"github.com/furnace-io/furnace-go/schema"
)

// ErrBatchTooLarge is returned when a batch exceeds the configured
// example limit.
var ErrBatchTooLarge = fmt.Errorf("batch exceeds example limit")

// SizeLimitOption configures the size limit middleware.
type SizeLimitOption func(*sizeLimitConfig)

type sizeLimitConfig struct {
	logger Logger
}

// WithSizeLimitLogger sets the logger for size limit events.
func WithSizeLimitLogger(l Logger) SizeLimitOption {
	return func(o *sizeLimitConfig) {
		o.logger = l
	}
}

// SizeLimit returns middleware that rejects batches with more than
// maxExamples documents. Oversized batches fail with an error wrapping
// ErrBatchTooLarge before inference runs.
func SizeLimit(maxExamples int, opts ...SizeLimitOption) Middleware {
	cfg := &sizeLimitConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next InferFunc) InferFunc {
		return func(ctx context.Context, examples []any) (*schema.Schema, error) {
			if len(examples) > maxExamples {
				if cfg.logger != nil {
					cfg.logger.Warn("batch size limit exceeded",
						F("examples", len(examples)),
						F("max", maxExamples),
					)
				}
				return nil, fmt.Errorf("%w: %d examples, limit %d", ErrBatchTooLarge, len(examples), maxExamples)
			}

			return next(ctx, examples)
		}
	}
}
