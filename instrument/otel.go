package instrument

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/furnace-io/furnace-go/schema"
)

const (
	instrumentationName = "github.com/furnace-io/furnace-go"
)

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*otelConfig)

type otelConfig struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
}

// WithTracerProvider sets a custom tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *otelConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets a custom meter provider.
func WithMeterProvider(mp metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		c.meterProvider = mp
	}
}

// WithOTelServiceName sets the service name for telemetry.
func WithOTelServiceName(name string) OTelOption {
	return func(c *otelConfig) {
		c.serviceName = name
	}
}

// OTel returns middleware that adds OpenTelemetry tracing and metrics.
// It creates a span per inference run and records run counts, example
// counts, and latency.
func OTel(opts ...OTelOption) Middleware {
	cfg := &otelConfig{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		serviceName:    "furnace",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := cfg.tracerProvider.Tracer(
		instrumentationName,
		trace.WithInstrumentationVersion("1.0.0"),
	)

	meter := cfg.meterProvider.Meter(
		instrumentationName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	runCounter, _ := meter.Int64Counter(
		"furnace.infer.runs",
		metric.WithDescription("Total number of inference runs"),
		metric.WithUnit("{run}"),
	)

	exampleCounter, _ := meter.Int64Counter(
		"furnace.infer.examples",
		metric.WithDescription("Total number of examples processed"),
		metric.WithUnit("{example}"),
	)

	runDuration, _ := meter.Float64Histogram(
		"furnace.infer.duration",
		metric.WithDescription("Duration of inference runs"),
		metric.WithUnit("ms"),
	)

	errorCounter, _ := meter.Int64Counter(
		"furnace.infer.errors",
		metric.WithDescription("Total number of failed inference runs"),
		metric.WithUnit("{error}"),
	)

	return func(next InferFunc) InferFunc {
		return func(ctx context.Context, examples []any) (*schema.Schema, error) {
			ctx, span := tracer.Start(ctx, "furnace.infer",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					attribute.Int("furnace.examples", len(examples)),
					attribute.String("service.name", cfg.serviceName),
				),
			)
			defer span.End()

			if runID := RunIDFromContext(ctx); runID != "" {
				span.SetAttributes(attribute.String("furnace.run_id", runID))
			}

			startTime := time.Now()

			attrs := []attribute.KeyValue{
				attribute.String("service.name", cfg.serviceName),
			}

			runCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			exampleCounter.Add(ctx, int64(len(examples)), metric.WithAttributes(attrs...))

			s, err := next(ctx, examples)

			duration := float64(time.Since(startTime).Microseconds()) / 1000.0
			runDuration.Record(ctx, duration, metric.WithAttributes(attrs...))

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				errorCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			} else {
				span.SetStatus(codes.Ok, "")
			}

			return s, err
		}
	}
}

// SpanFromContext returns the current span from context.
// Returns a no-op span if no span is present.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// AddSpanEvent adds an event to the current span.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
