package schema

import "sort"

// Merge combines schemas derived from sibling examples into one schema that
// every contributing example satisfies under a lenient interpretation.
//
// Zero inputs yield the empty accept-anything schema and a single input is
// returned unchanged. With two or more inputs the distinct non-null type
// tags decide the shape of the result: one tag merges structurally, two or
// more collapse to anyOf over the original inputs. Null contributions are
// tracked separately and never trigger anyOf on their own.
//
// Merge never fails for nodes produced by inference; behavior for
// hand-assembled malformed nodes is unspecified.
func Merge(schemas []*Schema) *Schema {
	if len(schemas) == 0 {
		return &Schema{}
	}
	if len(schemas) == 1 {
		return schemas[0]
	}

	counts := make(map[TypeTag]int)
	sawNull := false
	for _, s := range schemas {
		for _, tag := range s.Type {
			switch tag {
			case TypeNull:
				sawNull = true
			case TypeUnknown:
				// no type information
			default:
				counts[tag]++
			}
		}
	}

	merged := &Schema{}
	switch len(counts) {
	case 0:
		if sawNull {
			merged.Type = Single(TypeNull)
		}
		return merged
	case 1:
		var tag TypeTag
		for t := range counts {
			tag = t
		}
		merged.Type = Single(tag)
		switch tag {
		case TypeObject:
			mergeObjects(schemas, merged)
		case TypeArray:
			mergeArrays(schemas, merged)
		case TypeString:
			mergeStrings(schemas, merged)
		}
	default:
		merged.AnyOf = schemas
	}

	if sawNull {
		if len(merged.Type) > 0 {
			merged.Type = Nullable(merged.Type.Primary())
		} else if len(merged.AnyOf) > 0 {
			// Copy before appending so the caller's slice stays untouched.
			anyOf := make([]*Schema, len(merged.AnyOf), len(merged.AnyOf)+1)
			copy(anyOf, merged.AnyOf)
			merged.AnyOf = append(anyOf, &Schema{Type: Single(TypeNull)})
		}
	}

	return merged
}

// mergeObjects unions the properties of every object-typed input, merging
// per-key, and records as required the keys common to all of them.
func mergeObjects(schemas []*Schema, merged *Schema) {
	perKey := make(map[string][]*Schema)
	var common map[string]bool
	haveCommon := false

	for _, s := range schemas {
		if !s.Type.Has(TypeObject) {
			continue
		}
		if !haveCommon {
			common = make(map[string]bool, len(s.Properties))
			for k := range s.Properties {
				common[k] = true
			}
			haveCommon = true
		} else {
			for k := range common {
				if _, ok := s.Properties[k]; !ok {
					delete(common, k)
				}
			}
		}
		for k, prop := range s.Properties {
			perKey[k] = append(perKey[k], prop)
		}
	}

	merged.Properties = make(map[string]*Schema, len(perKey))
	for k, props := range perKey {
		merged.Properties[k] = Merge(props)
	}

	if len(common) > 0 {
		required := make([]string, 0, len(common))
		for k := range common {
			required = append(required, k)
		}
		sort.Strings(required)
		merged.Required = required
	}
}

// mergeArrays pools the items schema of every input that has one. Inputs
// derived from empty arrays carry no items and contribute nothing.
func mergeArrays(schemas []*Schema, merged *Schema) {
	var items []*Schema
	for _, s := range schemas {
		if s.Items != nil {
			items = append(items, s.Items)
		}
	}
	if len(items) > 0 {
		merged.Items = Merge(items)
	}
}

// mergeStrings keeps a format only when every input that declared one
// declared the same. Inputs with no format do not count as disagreement.
func mergeStrings(schemas []*Schema, merged *Schema) {
	var format Format
	distinct := 0
	for _, s := range schemas {
		if s.Format == "" {
			continue
		}
		if distinct == 0 || s.Format != format {
			distinct++
			format = s.Format
		}
	}
	if distinct == 1 {
		merged.Format = format
	}
}
