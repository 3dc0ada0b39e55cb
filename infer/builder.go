package infer

import (
	"sort"

	"github.com/furnace-io/furnace-go/schema"
)

// Builder folds examples into a running merged schema one at a time instead
// of materializing every per-example partial schema before a single merge.
// Statistics (type tallies, property presence, format agreement, pooled
// array items) are accumulated per node, so Schema assembles the result in
// one pass over the accumulated state.
//
// The folded inputs are also retained per node, because the anyOf contract
// requires the original per-example schemas verbatim and in input order.
// Builder output is identical to Infer over the same sequence; that
// equivalence is covered by tests.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	root    acc
	samples int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add folds one example into the accumulated schema.
func (b *Builder) Add(value any) {
	b.samples++
	b.root.fold(fromExample(value))
}

// Len returns the number of examples added so far.
func (b *Builder) Len() int {
	return b.samples
}

// Schema assembles the schema for everything added so far. With no examples
// it returns the same {"type":"object","properties":{}} default as Infer.
// The Builder remains usable afterwards; further Adds refine the result.
func (b *Builder) Schema() *schema.Schema {
	if b.samples == 0 {
		return &schema.Schema{
			Type:       schema.Single(schema.TypeObject),
			Properties: map[string]*schema.Schema{},
		}
	}
	return b.root.emit()
}

// acc accumulates merge state for one schema node.
type acc struct {
	n       int
	counts  map[schema.TypeTag]int
	sawNull bool

	// Folded inputs in original order, kept for identity and anyOf.
	parts []*schema.Schema

	// String format agreement.
	format         schema.Format
	haveFormat     bool
	formatConflict bool

	// Object property accumulators and the running key intersection.
	props      map[string]*acc
	common     map[string]bool
	haveCommon bool

	// Pooled array items.
	items *acc
}

func (a *acc) fold(s *schema.Schema) {
	a.n++
	a.parts = append(a.parts, s)

	for _, tag := range s.Type {
		switch tag {
		case schema.TypeNull:
			a.sawNull = true
		case schema.TypeUnknown:
			// no type information
		default:
			if a.counts == nil {
				a.counts = make(map[schema.TypeTag]int)
			}
			a.counts[tag]++
		}
	}

	if s.Format != "" {
		if !a.haveFormat {
			a.format = s.Format
			a.haveFormat = true
		} else if s.Format != a.format {
			a.formatConflict = true
		}
	}

	if s.Type.Has(schema.TypeObject) {
		a.foldObject(s)
	}

	if s.Items != nil {
		if a.items == nil {
			a.items = &acc{}
		}
		a.items.fold(s.Items)
	}
}

func (a *acc) foldObject(s *schema.Schema) {
	if !a.haveCommon {
		a.common = make(map[string]bool, len(s.Properties))
		for k := range s.Properties {
			a.common[k] = true
		}
		a.haveCommon = true
	} else {
		for k := range a.common {
			if _, ok := s.Properties[k]; !ok {
				delete(a.common, k)
			}
		}
	}

	if a.props == nil {
		a.props = make(map[string]*acc, len(s.Properties))
	}
	for k, prop := range s.Properties {
		child, ok := a.props[k]
		if !ok {
			child = &acc{}
			a.props[k] = child
		}
		child.fold(prop)
	}
}

// emit mirrors schema.Merge over the folded inputs.
func (a *acc) emit() *schema.Schema {
	if a.n == 0 {
		return &schema.Schema{}
	}
	if a.n == 1 {
		return a.parts[0]
	}

	merged := &schema.Schema{}
	switch len(a.counts) {
	case 0:
		if a.sawNull {
			merged.Type = schema.Single(schema.TypeNull)
		}
		return merged
	case 1:
		var tag schema.TypeTag
		for t := range a.counts {
			tag = t
		}
		merged.Type = schema.Single(tag)
		switch tag {
		case schema.TypeObject:
			a.emitObject(merged)
		case schema.TypeArray:
			if a.items != nil && a.items.n > 0 {
				merged.Items = a.items.emit()
			}
		case schema.TypeString:
			if a.haveFormat && !a.formatConflict {
				merged.Format = a.format
			}
		}
	default:
		merged.AnyOf = a.parts
	}

	if a.sawNull {
		if len(merged.Type) > 0 {
			merged.Type = schema.Nullable(merged.Type.Primary())
		} else if len(merged.AnyOf) > 0 {
			anyOf := make([]*schema.Schema, len(merged.AnyOf), len(merged.AnyOf)+1)
			copy(anyOf, merged.AnyOf)
			merged.AnyOf = append(anyOf, &schema.Schema{Type: schema.Single(schema.TypeNull)})
		}
	}

	return merged
}

func (a *acc) emitObject(merged *schema.Schema) {
	merged.Properties = make(map[string]*schema.Schema, len(a.props))
	for k, child := range a.props {
		merged.Properties[k] = child.emit()
	}

	if len(a.common) > 0 {
		required := make([]string, 0, len(a.common))
		for k := range a.common {
			required = append(required, k)
		}
		sort.Strings(required)
		merged.Required = required
	}
}
