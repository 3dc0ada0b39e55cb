package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypeJSON(t *testing.T) {
	t.Run("single tag marshals as a bare string", func(t *testing.T) {
		data, err := json.Marshal(Single(TypeInteger))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `"integer"` {
			t.Errorf("marshaled = %s, want \"integer\"", data)
		}
	})

	t.Run("nullable pair marshals as a two-element array", func(t *testing.T) {
		data, err := json.Marshal(Nullable(TypeString))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `["string","null"]` {
			t.Errorf("marshaled = %s, want [\"string\",\"null\"]", data)
		}
	})

	t.Run("unmarshal accepts both forms", func(t *testing.T) {
		var single Type
		if err := json.Unmarshal([]byte(`"object"`), &single); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if diff := cmp.Diff(Single(TypeObject), single); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}

		var pair Type
		if err := json.Unmarshal([]byte(`["string","null"]`), &pair); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if diff := cmp.Diff(Nullable(TypeString), pair); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects non-string forms", func(t *testing.T) {
		var typ Type
		if err := json.Unmarshal([]byte(`42`), &typ); err == nil {
			t.Error("expected error for numeric type declaration")
		}
	})
}

func TestSchemaJSON(t *testing.T) {
	t.Run("zero value marshals as empty object", func(t *testing.T) {
		data, err := json.Marshal(&Schema{})
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != "{}" {
			t.Errorf("marshaled = %s, want {}", data)
		}
	})

	t.Run("empty properties map is preserved", func(t *testing.T) {
		s := &Schema{
			Type:       Single(TypeObject),
			Properties: map[string]*Schema{},
		}
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `{"properties":{},"type":"object"}` {
			t.Errorf("marshaled = %s, want properties kept", data)
		}
	})

	t.Run("round-trips a nested schema", func(t *testing.T) {
		src := &Schema{
			Type: Single(TypeObject),
			Properties: map[string]*Schema{
				"id":    {Type: Single(TypeString), Format: FormatUUID},
				"tags":  {Type: Single(TypeArray), Items: &Schema{Type: Single(TypeString)}},
				"score": {Type: Nullable(TypeNumber)},
			},
			Required: []string{"id"},
		}

		data, err := json.Marshal(src)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var got Schema
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if diff := cmp.Diff(src, &got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("anyOf preserves branch order", func(t *testing.T) {
		s := &Schema{AnyOf: []*Schema{
			{Type: Single(TypeInteger)},
			{Type: Single(TypeString)},
		}}
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		want := `{"anyOf":[{"type":"integer"},{"type":"string"}]}`
		if string(data) != want {
			t.Errorf("marshaled = %s, want %s", data, want)
		}
	})
}
