package instrument

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/furnace-io/furnace-go/schema"
)

func TestRecover(t *testing.T) {
	t.Run("converts panics to errors", func(t *testing.T) {
		panicking := func(context.Context, []any) (*schema.Schema, error) {
			panic("something broke")
		}

		run := Recover()(panicking)
		_, err := run(context.Background(), nil)
		if err == nil {
			t.Fatal("expected error from recovered panic")
		}
		if !strings.Contains(err.Error(), "something broke") {
			t.Errorf("error %q does not carry the panic value", err)
		}
	})

	t.Run("wraps panicking errors", func(t *testing.T) {
		cause := errors.New("root cause")
		panicking := func(context.Context, []any) (*schema.Schema, error) {
			panic(cause)
		}

		run := Recover()(panicking)
		_, err := run(context.Background(), nil)
		if !errors.Is(err, cause) {
			t.Errorf("errors.Is(err, cause) = false, err = %v", err)
		}
	})

	t.Run("passes normal results through", func(t *testing.T) {
		run := Recover()(Infer())
		s, err := run(context.Background(), []any{"x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Type.Primary() != schema.TypeString {
			t.Errorf("type = %q, want string", s.Type.Primary())
		}
	})

	t.Run("custom handler can substitute a result", func(t *testing.T) {
		fallback := &schema.Schema{}
		handler := func(context.Context, []any, any) (*schema.Schema, error) {
			return fallback, nil
		}

		panicking := func(context.Context, []any) (*schema.Schema, error) {
			panic("ignored")
		}

		run := RecoverWithHandler(handler)(panicking)
		s, err := run(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != fallback {
			t.Error("expected the handler's fallback schema")
		}
	})
}
