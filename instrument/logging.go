package instrument

import (
	"context"
	"time"

	"github.com/furnace-io/furnace-go/schema"
)

// Logger is the interface for structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logging returns middleware that logs each inference run.
// Successful runs are logged at info level, errors at error level.
func Logging(logger Logger) Middleware {
	return func(next InferFunc) InferFunc {
		return func(ctx context.Context, examples []any) (*schema.Schema, error) {
			start := time.Now()

			s, err := next(ctx, examples)

			duration := time.Since(start)

			fields := []Field{
				F("examples", len(examples)),
				F("duration", duration),
			}

			if runID := RunIDFromContext(ctx); runID != "" {
				fields = append(fields, F("run_id", runID))
			}

			if err != nil {
				fields = append(fields, F("error", err.Error()))
				logger.Error("inference failed", fields...)
			} else {
				logger.Info("inference completed", fields...)
			}

			return s, err
		}
	}
}
