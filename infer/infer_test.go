package infer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/furnace-io/furnace-go/schema"
)

func TestInfer(t *testing.T) {
	t.Run("no examples asserts an empty object", func(t *testing.T) {
		data, err := json.Marshal(Infer(nil))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		want := `{"properties":{},"type":"object"}`
		if string(data) != want {
			t.Errorf("marshaled = %s, want %s", data, want)
		}
	})

	t.Run("single scalar example", func(t *testing.T) {
		s := Infer([]any{"alice@example.com"})
		want := &schema.Schema{Type: schema.Single(schema.TypeString), Format: schema.FormatEmail}
		if diff := cmp.Diff(want, s); diff != "" {
			t.Errorf("schema mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("required is the intersection of object keys", func(t *testing.T) {
		s := Infer([]any{
			map[string]any{"name": "Alice", "age": 30, "email": "a@x.com"},
			map[string]any{"name": "Bob", "age": 25},
		})

		if diff := cmp.Diff([]string{"age", "name"}, s.Required); diff != "" {
			t.Errorf("required mismatch (-want +got):\n%s", diff)
		}
		if _, ok := s.Properties["email"]; !ok {
			t.Error("email must stay in properties even when optional")
		}
	})

	t.Run("type disagreement produces ordered anyOf", func(t *testing.T) {
		s := Infer([]any{
			map[string]any{"a": 1},
			map[string]any{"a": "x"},
		})

		a := s.Properties["a"]
		if a == nil {
			t.Fatal("expected property 'a'")
		}
		want := &schema.Schema{AnyOf: []*schema.Schema{
			{Type: schema.Single(schema.TypeInteger)},
			{Type: schema.Single(schema.TypeString)},
		}}
		if diff := cmp.Diff(want, a); diff != "" {
			t.Errorf("anyOf mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("null examples make a property nullable", func(t *testing.T) {
		s := Infer([]any{
			map[string]any{"a": "x"},
			map[string]any{"a": nil},
		})

		a := s.Properties["a"]
		if diff := cmp.Diff(schema.Nullable(schema.TypeString), a.Type); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("array elements pool across examples", func(t *testing.T) {
		s := Infer([]any{
			[]any{1, 2, 3},
			[]any{4, 5, 6},
		})

		want := &schema.Schema{
			Type:  schema.Single(schema.TypeArray),
			Items: &schema.Schema{Type: schema.Single(schema.TypeInteger)},
		}
		if diff := cmp.Diff(want, s); diff != "" {
			t.Errorf("schema mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("elements of one array merge before examples combine", func(t *testing.T) {
		s := Infer([]any{[]any{1, "x"}})

		items := s.Items
		if items == nil {
			t.Fatal("expected items schema")
		}
		if len(items.AnyOf) != 2 {
			t.Fatalf("expected 2 anyOf branches for mixed elements, got %d", len(items.AnyOf))
		}
	})

	t.Run("empty arrays carry no items", func(t *testing.T) {
		s := Infer([]any{[]any{}})
		if s.Items != nil {
			t.Errorf("items = %+v, want nil", s.Items)
		}
	})

	t.Run("format agreement survives the merge", func(t *testing.T) {
		s := Infer([]any{
			map[string]any{"email": "a@x.com"},
			map[string]any{"email": "b@y.com"},
		})

		email := s.Properties["email"]
		want := &schema.Schema{Type: schema.Single(schema.TypeString), Format: schema.FormatEmail}
		if diff := cmp.Diff(want, email); diff != "" {
			t.Errorf("schema mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("strings without a format do not drop an agreed one", func(t *testing.T) {
		s := Infer([]any{
			map[string]any{"email": "a@x.com"},
			map[string]any{"email": "not an email"},
		})

		email := s.Properties["email"]
		want := &schema.Schema{Type: schema.Single(schema.TypeString), Format: schema.FormatEmail}
		if diff := cmp.Diff(want, email); diff != "" {
			t.Errorf("schema mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("format dropped when examples declare different ones", func(t *testing.T) {
		s := Infer([]any{
			map[string]any{"s": "a@x.com"},
			map[string]any{"s": "https://x.com"},
		})

		prop := s.Properties["s"]
		if prop.Format != "" {
			t.Errorf("format = %q, want dropped", prop.Format)
		}
		if diff := cmp.Diff(schema.Single(schema.TypeString), prop.Type); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("booleans are never integers", func(t *testing.T) {
		s := Infer([]any{true, false})
		if diff := cmp.Diff(schema.Single(schema.TypeBoolean), s.Type); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unrepresentable values degrade instead of failing", func(t *testing.T) {
		s := Infer([]any{make(chan int), 1})
		// The channel contributes no type information, so the integer wins.
		if diff := cmp.Diff(schema.Single(schema.TypeInteger), s.Type); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nested objects merge per key", func(t *testing.T) {
		s := Infer([]any{
			map[string]any{"user": map[string]any{"id": 1, "name": "Alice"}},
			map[string]any{"user": map[string]any{"id": 2}},
		})

		user := s.Properties["user"]
		if user == nil {
			t.Fatal("expected property 'user'")
		}
		if diff := cmp.Diff([]string{"id"}, user.Required); diff != "" {
			t.Errorf("nested required mismatch (-want +got):\n%s", diff)
		}
		if len(user.Properties) != 2 {
			t.Errorf("nested properties = %d keys, want 2", len(user.Properties))
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		examples := []any{
			map[string]any{"a": 1, "b": []any{"x", nil}, "c": map[string]any{"d": 2.5}},
			map[string]any{"a": "one", "b": []any{"y"}},
		}

		first, err := json.Marshal(Infer(examples))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		second, err := json.Marshal(Infer(examples))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(first) != string(second) {
			t.Errorf("repeated inference differs:\n%s\n%s", first, second)
		}
	})
}
