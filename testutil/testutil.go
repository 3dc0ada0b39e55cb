// Package testutil provides helpers for testing schema inference.
//
// The helpers cover the three chores inference tests repeat: building
// example corpora from JSON literals, comparing schemas with readable
// diffs, and checking that a schema accepts the examples it was inferred
// from.
//
// Example usage:
//
//	func TestUsers(t *testing.T) {
//	    examples := testutil.ParseExamples(t, `[{"id":1},{"id":2}]`)
//	    s := infer.Infer(examples)
//	    testutil.AssertValidatesAll(t, s, examples)
//	}
package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/furnace-io/furnace-go/schema"
)

// ParseExamples decodes a JSON array literal into a batch of examples.
// Numbers decode as json.Number, matching what package corpus produces.
func ParseExamples(t testing.TB, raw string) []any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var examples []any
	if err := dec.Decode(&examples); err != nil {
		t.Fatalf("failed to parse examples: %v", err)
	}
	return examples
}

// MarshalSchema returns the canonical JSON encoding of a schema.
func MarshalSchema(t testing.TB, s *schema.Schema) string {
	t.Helper()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("failed to marshal schema: %v", err)
	}
	return string(data)
}

// AssertSchemaEqual fails the test with a structural diff when two schemas
// differ.
func AssertSchemaEqual(t testing.TB, want, got *schema.Schema) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("schema mismatch (-want +got):\n%s", diff)
	}
}

// AssertValidatesAll fails the test when any example does not validate
// against the schema. This is the round-trip property: a schema inferred
// from a corpus must accept every document in that corpus.
func AssertValidatesAll(t testing.TB, s *schema.Schema, examples []any) {
	t.Helper()

	for i, ex := range examples {
		if err := s.ValidateValue(ex); err != nil {
			t.Errorf("example %d does not validate: %v", i, err)
		}
	}
}

// UUIDStrings returns n distinct canonical UUID strings, handy for format
// detection fixtures.
func UUIDStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out
}
