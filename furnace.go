// Package furnace infers JSON Schemas from example documents.
//
// furnace-go takes a batch of JSON values and produces one schema
// describing their common shape: types, nested structure, which object
// keys are always present, and recognized string formats.
//
// Basic usage:
//
//	s := furnace.Infer([]any{
//	    map[string]any{"name": "Alice", "age": 30},
//	    map[string]any{"name": "Bob", "age": 25},
//	})
//
//	data, _ := json.Marshal(s)
//	// {"properties":{"age":{"type":"integer"},"name":{"type":"string"}},
//	//  "required":["age","name"],"type":"object"}
//
// Streaming callers fold examples one at a time instead:
//
//	b := furnace.NewBuilder()
//	for _, doc := range docs {
//	    b.Add(doc)
//	}
//	s := b.Schema()
//
// The subpackages hold the moving parts: infer (classification and the
// example walk), schema (the node model, merge engine, and lenient
// validator), corpus (JSON/YAML input decoding), melt (relational
// extraction), and instrument (pipeline middleware).
package furnace

import (
	"github.com/furnace-io/furnace-go/infer"
	"github.com/furnace-io/furnace-go/schema"
)

// Re-export core types for convenience

// Schema is one node of an inferred JSON Schema.
type Schema = schema.Schema

// Type is a schema type declaration.
type Type = schema.Type

// TypeTag identifies one of the seven JSON-primitive kinds.
type TypeTag = schema.TypeTag

// Format names a recognized lexical pattern for string values.
type Format = schema.Format

// Builder folds examples into a running merged schema.
type Builder = infer.Builder

// Infer produces one schema describing every example in the batch.
func Infer(examples []any) *Schema {
	return infer.Infer(examples)
}

// Merge combines schemas derived from sibling examples into one.
func Merge(schemas []*Schema) *Schema {
	return schema.Merge(schemas)
}

// NewBuilder returns an empty streaming Builder.
func NewBuilder() *Builder {
	return infer.NewBuilder()
}

// TypeOf maps a decoded JSON value to its primitive type tag.
func TypeOf(value any) TypeTag {
	return infer.TypeOf(value)
}

// DetectFormat classifies a string against the recognized formats.
func DetectFormat(s string) (Format, bool) {
	return infer.DetectFormat(s)
}
