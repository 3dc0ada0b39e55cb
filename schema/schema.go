package schema

import (
	"encoding/json"
	"fmt"
)

// TypeTag identifies one of the seven JSON-primitive kinds.
type TypeTag string

// The recognized type tags.
const (
	TypeNull    TypeTag = "null"
	TypeBoolean TypeTag = "boolean"
	TypeInteger TypeTag = "integer"
	TypeNumber  TypeTag = "number"
	TypeString  TypeTag = "string"
	TypeArray   TypeTag = "array"
	TypeObject  TypeTag = "object"

	// TypeUnknown marks a value with no JSON representation. It carries no
	// type information and never appears in a marshaled schema.
	TypeUnknown TypeTag = "unknown"
)

// Format names a recognized lexical pattern for string values.
type Format string

// The recognized string formats.
const (
	FormatDate     Format = "date"
	FormatTime     Format = "time"
	FormatDateTime Format = "date-time"
	FormatEmail    Format = "email"
	FormatURI      Format = "uri"
	FormatUUID     Format = "uuid"
	FormatIPv4     Format = "ipv4"
	FormatIPv6     Format = "ipv6"
)

// Type is a schema type declaration: a single tag, or the two-element
// [tag, "null"] pair denoting a nullable tag. A nil Type declares nothing.
type Type []TypeTag

// Single returns a Type declaring exactly one tag.
func Single(tag TypeTag) Type {
	return Type{tag}
}

// Nullable returns the two-tag [tag, "null"] form.
func Nullable(tag TypeTag) Type {
	return Type{tag, TypeNull}
}

// Has reports whether the declaration includes the given tag.
func (t Type) Has(tag TypeTag) bool {
	for _, tt := range t {
		if tt == tag {
			return true
		}
	}
	return false
}

// Primary returns the first declared tag, or TypeUnknown when nothing is
// declared.
func (t Type) Primary() TypeTag {
	if len(t) == 0 {
		return TypeUnknown
	}
	return t[0]
}

// MarshalJSON encodes a single tag as a bare string and the nullable pair as
// a two-element array, matching the wire shape of JSON Schema.
func (t Type) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(string(t[0]))
	}
	tags := make([]string, len(t))
	for i, tt := range t {
		tags[i] = string(tt)
	}
	return json.Marshal(tags)
}

// UnmarshalJSON accepts either a bare string or an array of tags.
func (t *Type) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Type{TypeTag(single)}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("type must be a string or array of strings: %w", err)
	}
	tags := make(Type, len(many))
	for i, s := range many {
		tags[i] = TypeTag(s)
	}
	*t = tags
	return nil
}

// Schema is one node of an inferred JSON Schema. The zero value is the empty
// "accept anything" schema. Nodes are built bottom-up and never mutated
// after construction.
type Schema struct {
	// Type declares the node's primitive kind, or the [T, "null"] pair when
	// null examples contributed alongside T.
	Type Type

	// Properties maps object keys to their nested schemas. Non-nil exactly
	// when the node describes an object; may be empty.
	Properties map[string]*Schema

	// Required lists, alphabetically, the keys present in every contributing
	// object example. Omitted when the intersection is empty.
	Required []string

	// Items describes the pooled elements of all contributing arrays.
	Items *Schema

	// Format is set for strings when every contributing example that
	// declared a format declared the same one.
	Format Format

	// AnyOf holds the original contributing schemas, in input order and
	// undeduplicated, when examples disagreed on type.
	AnyOf []*Schema
}

// IsEmpty reports whether the node constrains nothing.
func (s *Schema) IsEmpty() bool {
	return len(s.Type) == 0 && s.Properties == nil && s.Required == nil &&
		s.Items == nil && s.Format == "" && s.AnyOf == nil
}

// MarshalJSON emits only the populated vocabulary keys. A nil Properties map
// is omitted while an empty one marshals as {}, which preserves the
// zero-example default {"type":"object","properties":{}}.
func (s *Schema) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 6)
	if len(s.Type) > 0 {
		out["type"] = s.Type
	}
	if s.Format != "" {
		out["format"] = string(s.Format)
	}
	if s.Properties != nil {
		out["properties"] = s.Properties
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if s.Items != nil {
		out["items"] = s.Items
	}
	if len(s.AnyOf) > 0 {
		out["anyOf"] = s.AnyOf
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the vocabulary keys defined in this package and
// ignores any others.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       Type               `json:"type"`
		Format     string             `json:"format"`
		Properties map[string]*Schema `json:"properties"`
		Required   []string           `json:"required"`
		Items      *Schema            `json:"items"`
		AnyOf      []*Schema          `json:"anyOf"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Type = raw.Type
	s.Format = Format(raw.Format)
	s.Properties = raw.Properties
	s.Required = raw.Required
	s.Items = raw.Items
	s.AnyOf = raw.AnyOf
	return nil
}
