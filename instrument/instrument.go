package instrument

import (
	"context"

	"github.com/furnace-io/furnace-go/infer"
	"github.com/furnace-io/furnace-go/schema"
)

// InferFunc is the contract pipelines wrap: infer one schema from a batch
// of examples.
type InferFunc func(ctx context.Context, examples []any) (*schema.Schema, error)

// Middleware wraps an InferFunc with additional behavior.
type Middleware func(next InferFunc) InferFunc

// Infer adapts the pure batch inferencer to an InferFunc. The core itself
// never fails for valid JSON values, so the returned error is always nil
// unless middleware injects one.
func Infer() InferFunc {
	return func(_ context.Context, examples []any) (*schema.Schema, error) {
		return infer.Infer(examples), nil
	}
}

// Chain composes multiple middleware into a single middleware.
// Middleware are applied in order, so Chain(m1, m2, m3) results in
// m1 wrapping m2 wrapping m3 wrapping the final InferFunc.
func Chain(middlewares ...Middleware) Middleware {
	return func(final InferFunc) InferFunc {
		// Apply middleware in reverse order so they execute in order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// Pipeline provides a fluent API for building instrumented inference.
type Pipeline struct {
	middlewares []Middleware
}

// Use creates a new pipeline starting with the given middleware.
func Use(middlewares ...Middleware) *Pipeline {
	return &Pipeline{
		middlewares: middlewares,
	}
}

// Append adds middleware to the pipeline and returns the updated pipeline.
func (p *Pipeline) Append(middlewares ...Middleware) *Pipeline {
	p.middlewares = append(p.middlewares, middlewares...)
	return p
}

// Then applies the pipeline to an InferFunc and returns the wrapped function.
func (p *Pipeline) Then(fn InferFunc) InferFunc {
	return Chain(p.middlewares...)(fn)
}

// DefaultStack returns the recommended middleware stack: panic recovery,
// run ID injection, and logging.
func DefaultStack(logger Logger) []Middleware {
	return []Middleware{
		Recover(),
		RunID(),
		Logging(logger),
	}
}
