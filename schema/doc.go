// Package schema defines the JSON Schema node model and the merge engine.
//
// A Schema describes the shape of JSON values: its type (possibly the
// nullable [T, "null"] pair), object properties with their required subset,
// a pooled items schema for arrays, a recognized string format, and anyOf
// alternatives when examples disagreed on type. The zero value is the empty
// schema that accepts anything.
//
// # Merging
//
// Merge combines schemas derived from sibling examples:
//
//	merged := schema.Merge([]*schema.Schema{
//	    {Type: schema.Single(schema.TypeString)},
//	    {Type: schema.Single(schema.TypeNull)},
//	})
//	// merged.Type == ["string", "null"]
//
// Merge is the only place where separate examples interact. It recurses into
// object properties and array items, computes required keys as the sorted
// intersection of property sets, and keeps a string format only when all
// contributors agree on it.
//
// # Validation
//
// Schemas validate values under a deliberately lenient interpretation:
// extra object keys and absent optional keys are fine, formats are never
// enforced, and anyOf is satisfied by any single branch. This comparator
// exists for round-trip testing, not for standards-conformant validation.
package schema
