// Package infer derives JSON Schemas from example documents.
//
// The package has two entry points. Infer walks a batch of examples into
// per-example partial schemas and merges them once:
//
//	s := infer.Infer([]any{
//	    map[string]any{"name": "Alice", "age": 30},
//	    map[string]any{"name": "Bob"},
//	})
//	// s.Required == ["name"]
//
// Builder folds examples into a running accumulator, one at a time, for
// callers that stream documents and do not want N partial schemas alive at
// once:
//
//	b := infer.NewBuilder()
//	for _, doc := range docs {
//	    b.Add(doc)
//	}
//	s := b.Schema()
//
// Both produce identical schemas for the same example sequence.
//
// # Value kinds
//
// Examples are decoded JSON values: nil, bool, string, json.Number or
// float64, map[string]any, and []any. TypeOf classifies them into the seven
// primitive tags; anything else degrades to "no type information" rather
// than failing the inference. DetectFormat additionally classifies strings
// against the recognized lexical formats (date, time, date-time, email,
// uri, uuid, ipv4, ipv6) in a fixed priority order.
package infer
