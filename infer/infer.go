package infer

import (
	"github.com/furnace-io/furnace-go/schema"
)

// Infer produces one schema describing every example in the input sequence.
//
// Each example is first walked into an independent partial schema; the
// partials are then combined with a single schema.Merge call, which is the
// only point where examples interact. Zero examples yield the default
// {"type":"object","properties":{}} rather than the merge engine's empty
// schema: no data still asserts object-shaped input.
//
// Infer is pure and deterministic: the same example sequence always
// produces the same schema, and valid JSON values never cause a failure.
func Infer(examples []any) *schema.Schema {
	if len(examples) == 0 {
		return &schema.Schema{
			Type:       schema.Single(schema.TypeObject),
			Properties: map[string]*schema.Schema{},
		}
	}

	partials := make([]*schema.Schema, len(examples))
	for i, ex := range examples {
		partials[i] = fromExample(ex)
	}
	return schema.Merge(partials)
}

// fromExample walks a single value into its partial schema. Object keys are
// not merged here; each key gets one partial schema per example. Array
// elements, in contrast, are merged immediately so each array contributes a
// single items schema.
func fromExample(value any) *schema.Schema {
	switch TypeOf(value) {
	case schema.TypeNull:
		return &schema.Schema{Type: schema.Single(schema.TypeNull)}
	case schema.TypeObject:
		obj := value.(map[string]any)
		props := make(map[string]*schema.Schema, len(obj))
		for k, v := range obj {
			props[k] = fromExample(v)
		}
		return &schema.Schema{
			Type:       schema.Single(schema.TypeObject),
			Properties: props,
		}
	case schema.TypeArray:
		arr := value.([]any)
		if len(arr) == 0 {
			return &schema.Schema{Type: schema.Single(schema.TypeArray)}
		}
		items := make([]*schema.Schema, len(arr))
		for i, el := range arr {
			items[i] = fromExample(el)
		}
		return &schema.Schema{
			Type:  schema.Single(schema.TypeArray),
			Items: schema.Merge(items),
		}
	case schema.TypeString:
		s := &schema.Schema{Type: schema.Single(schema.TypeString)}
		if format, ok := DetectFormat(value.(string)); ok {
			s.Format = format
		}
		return s
	case schema.TypeBoolean:
		return &schema.Schema{Type: schema.Single(schema.TypeBoolean)}
	case schema.TypeInteger:
		return &schema.Schema{Type: schema.Single(schema.TypeInteger)}
	case schema.TypeNumber:
		return &schema.Schema{Type: schema.Single(schema.TypeNumber)}
	default:
		return &schema.Schema{}
	}
}
