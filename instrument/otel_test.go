package instrument

import (
	"context"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/furnace-io/furnace-go/schema"
)

func TestOTel(t *testing.T) {
	t.Run("creates a span per run", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		defer tp.Shutdown(context.Background())

		run := OTel(WithTracerProvider(tp))(Infer())

		if _, err := run(context.Background(), []any{1, 2, 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Name != "furnace.infer" {
			t.Errorf("span name = %q, want %q", spans[0].Name, "furnace.infer")
		}
	})

	t.Run("records errors on the span", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		defer tp.Shutdown(context.Background())

		failing := func(context.Context, []any) (*schema.Schema, error) {
			return nil, errors.New("boom")
		}
		run := OTel(WithTracerProvider(tp))(failing)

		if _, err := run(context.Background(), nil); err == nil {
			t.Fatal("expected error")
		}

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if len(spans[0].Events) == 0 {
			t.Error("expected error event on span")
		}
	})

	t.Run("records run ID as an attribute", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		defer tp.Shutdown(context.Background())

		run := Chain(
			RunIDWithGenerator(func() string { return "run-7" }),
			OTel(WithTracerProvider(tp)),
		)(Infer())

		if _, err := run(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spans := exporter.GetSpans()
		found := false
		for _, attr := range spans[0].Attributes {
			if string(attr.Key) == "furnace.run_id" && attr.Value.AsString() == "run-7" {
				found = true
			}
		}
		if !found {
			t.Error("expected furnace.run_id attribute on span")
		}
	})

	t.Run("works with a metric provider attached", func(t *testing.T) {
		mp := sdkmetric.NewMeterProvider()
		defer mp.Shutdown(context.Background())

		run := OTel(WithMeterProvider(mp))(Infer())

		if _, err := run(context.Background(), []any{"a"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
