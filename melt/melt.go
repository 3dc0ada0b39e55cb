package melt

import (
	"fmt"
)

// EntityID identifies one extracted entity.
type EntityID string

// ParentRef links a child entity back to the entity it was extracted from.
type ParentRef struct {
	EntityType string
	ID         EntityID
	FieldName  string
}

// Entity is one row extracted from a document. Type names the table the row
// belongs to; nested entity types are the parent type joined with the field
// name.
type Entity struct {
	Type   string
	Data   map[string]any
	ID     EntityID
	Parent *ParentRef
}

// Config controls the melting process.
type Config struct {
	// MaxDepth caps how deep entity extraction recurses; 0 extracts only
	// the root.
	MaxDepth int

	// IDSuffix is appended to a parent field name to form the foreign key
	// column in child rows.
	IDSuffix string

	// Separator joins parent and field names into nested entity types.
	Separator string

	// IncludeParentIDs writes the parent's ID into each child row.
	IncludeParentIDs bool

	// ScalarFields lists keys that always stay inline on the row, even
	// when their value is an object or array.
	ScalarFields []string
}

// DefaultConfig returns the configuration used by Melter when none is given.
func DefaultConfig() Config {
	return Config{
		MaxDepth:         10,
		IDSuffix:         "_id",
		Separator:        "_",
		IncludeParentIDs: true,
	}
}

// Melter extracts entities from JSON values. A Melter is not safe for
// concurrent use; its ID counter is shared across Melt calls so synthesized
// IDs stay unique within one Melter.
type Melter struct {
	config  Config
	scalar  map[string]bool
	counter uint64
}

// Option configures a Melter.
type Option func(*Melter)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Melter) {
		m.config = cfg
	}
}

// NewMelter creates a Melter with the default configuration.
func NewMelter(opts ...Option) *Melter {
	m := &Melter{config: DefaultConfig()}
	for _, opt := range opts {
		opt(m)
	}
	m.scalar = make(map[string]bool, len(m.config.ScalarFields))
	for _, f := range m.config.ScalarFields {
		m.scalar[f] = true
	}
	return m
}

// Melt extracts the entities contained in one document. The root entity is
// named "root"; an entity from an array under key "posts" is "root_posts".
// Scalar roots produce no entities.
func (m *Melter) Melt(value any) []Entity {
	var entities []Entity
	m.extract(value, "root", nil, 0, &entities)
	return entities
}

func (m *Melter) extract(value any, entityType string, parent *ParentRef, depth int, entities *[]Entity) {
	if depth > m.config.MaxDepth {
		return
	}

	switch v := value.(type) {
	case map[string]any:
		m.extractObject(v, entityType, parent, depth, entities)
	case []any:
		m.extractArray(v, entityType, parent, depth, entities)
	}
}

func (m *Melter) extractObject(obj map[string]any, entityType string, parent *ParentRef, depth int, entities *[]Entity) {
	data := make(map[string]any)
	var nested []nestedField

	for key, value := range obj {
		if m.scalar[key] {
			data[key] = value
			continue
		}
		switch value.(type) {
		case []any:
			// Arrays always become separate entities.
			nested = append(nested, nestedField{key, value})
		case map[string]any:
			if shouldExtractObject(value) {
				nested = append(nested, nestedField{key, value})
			} else {
				// Small objects stay inline.
				data[key] = value
			}
		default:
			data[key] = value
		}
	}

	entity := Entity{Type: entityType, Data: data, Parent: parent}
	entity.ID = m.entityID(&entity)

	if parent != nil && m.config.IncludeParentIDs {
		entity.Data[parent.FieldName+m.config.IDSuffix] = string(parent.ID)
	}

	*entities = append(*entities, entity)

	for _, field := range nested {
		ref := &ParentRef{
			EntityType: entityType,
			ID:         entity.ID,
			FieldName:  field.name,
		}
		m.extract(field.value, entityType+m.config.Separator+field.name, ref, depth+1, entities)
	}
}

func (m *Melter) extractArray(arr []any, entityType string, parent *ParentRef, depth int, entities *[]Entity) {
	if isEntityArray(arr) {
		for _, item := range arr {
			m.extract(item, entityType, parent, depth, entities)
		}
		return
	}

	// Arrays of scalars become one row per element, keeping the index.
	for idx, item := range arr {
		data := map[string]any{
			"value": item,
			"_idx":  idx,
		}
		entity := Entity{Type: entityType, Data: data, Parent: parent}
		if parent != nil && m.config.IncludeParentIDs {
			entity.Data[parent.FieldName+m.config.IDSuffix] = string(parent.ID)
		}
		*entities = append(*entities, entity)
	}
}

type nestedField struct {
	name  string
	value any
}

// entityID reuses the row's own "id" value when present and synthesizes a
// counter-based one otherwise.
func (m *Melter) entityID(e *Entity) EntityID {
	switch id := e.Data["id"].(type) {
	case string:
		return EntityID(id)
	case nil:
		// fall through to synthesis
	default:
		return EntityID(fmt.Sprint(id))
	}
	m.counter++
	return EntityID(fmt.Sprintf("_gen_%d", m.counter))
}

// isEntityArray reports whether the array should melt into child rows:
// true when most elements are objects.
func isEntityArray(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	objects := 0
	for _, v := range arr {
		if _, ok := v.(map[string]any); ok {
			objects++
		}
	}
	return objects > len(arr)/2
}

// shouldExtractObject reports whether a nested object becomes its own
// entity: objects with an "id" or more than two fields do.
func shouldExtractObject(value any) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}
	if _, hasID := obj["id"]; hasID {
		return true
	}
	return len(obj) > 2
}
