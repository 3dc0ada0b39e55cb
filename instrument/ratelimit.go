package instrument

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"

	"github.com/furnace-io/furnace-go/schema"
)

// ErrRateLimited is returned when an inference run exceeds the configured
// rate.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimitOption configures the rate limiter.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	keyFunc func(ctx context.Context) string
	logger  Logger
}

// WithRateLimitKeyFunc sets a function to extract a rate limit key from the
// context. This allows per-tenant or per-source rate limiting.
func WithRateLimitKeyFunc(fn func(ctx context.Context) string) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.keyFunc = fn
	}
}

// WithRateLimitLogger sets the logger for rate limit events.
func WithRateLimitLogger(l Logger) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.logger = l
	}
}

// RateLimit returns middleware that limits inference runs using a token
// bucket algorithm. The rate is specified as runs per second; burst allows
// short bursts above it. Useful when inference sits on a request path fed
// by untrusted callers.
func RateLimit(rate int, burst int, opts ...RateLimitOption) Middleware {
	cfg := &rateLimitConfig{
		keyFunc: func(context.Context) string { return "global" },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := ratelimit.New(&ratelimit.Config{
		Rate:     rate,
		Burst:    burst,
		Interval: time.Second,
	})

	return func(next InferFunc) InferFunc {
		return func(ctx context.Context, examples []any) (*schema.Schema, error) {
			key := cfg.keyFunc(ctx)

			if !limiter.Allow(ctx, key) {
				if cfg.logger != nil {
					cfg.logger.Warn("rate limit exceeded",
						Field{Key: "key", Value: key},
						Field{Key: "examples", Value: len(examples)},
					)
				}
				return nil, ErrRateLimited
			}

			return next(ctx, examples)
		}
	}
}
