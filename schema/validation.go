package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports one mismatch between a value and a schema.
type ValidationError struct {
	Path    string // JSON path to the invalid value (e.g., "user.email")
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range e {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks JSON data against the schema under the lenient
// interpretation used by the round-trip tests: unknown extra keys are
// allowed, absent optional keys are allowed, and formats are not checked.
// Returns nil if valid, or ValidationErrors if invalid.
func (s *Schema) Validate(data json.RawMessage) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return &ValidationError{Message: fmt.Sprintf("invalid JSON: %s", err)}
	}

	var errs ValidationErrors
	s.validate("", value, &errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateValue checks a decoded JSON value against the schema.
func (s *Schema) ValidateValue(value any) error {
	var errs ValidationErrors
	s.validate("", value, &errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *Schema) validate(path string, value any, errs *ValidationErrors) {
	// anyOf is satisfied by any one branch.
	if len(s.AnyOf) > 0 {
		for _, branch := range s.AnyOf {
			var branchErrs ValidationErrors
			branch.validate(path, value, &branchErrs)
			if len(branchErrs) == 0 {
				return
			}
		}
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: "value matches no anyOf branch",
		})
		return
	}

	if len(s.Type) == 0 {
		// Accept-anything node.
		return
	}

	if value == nil {
		if !s.Type.Has(TypeNull) {
			*errs = append(*errs, &ValidationError{
				Path:    path,
				Message: fmt.Sprintf("null not allowed, expected %s", s.Type.Primary()),
			})
		}
		return
	}

	switch s.Type.Primary() {
	case TypeObject:
		s.validateObject(path, value, errs)
	case TypeArray:
		s.validateArray(path, value, errs)
	case TypeString:
		s.validateString(path, value, errs)
	case TypeInteger:
		s.validateInteger(path, value, errs)
	case TypeNumber:
		s.validateNumber(path, value, errs)
	case TypeBoolean:
		s.validateBoolean(path, value, errs)
	case TypeNull:
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected null, got %T", value),
		})
	}
}

func (s *Schema) validateObject(path string, value any, errs *ValidationErrors) {
	obj, ok := value.(map[string]any)
	if !ok {
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected object, got %T", value),
		})
		return
	}

	// Check required fields
	for _, req := range s.Required {
		if _, exists := obj[req]; !exists {
			fieldPath := joinPath(path, req)
			*errs = append(*errs, &ValidationError{
				Path:    fieldPath,
				Message: "required field is missing",
			})
		}
	}

	// Validate present properties; extra keys are allowed.
	for name, propSchema := range s.Properties {
		if val, exists := obj[name]; exists {
			fieldPath := joinPath(path, name)
			propSchema.validate(fieldPath, val, errs)
		}
	}
}

func (s *Schema) validateArray(path string, value any, errs *ValidationErrors) {
	arr, ok := value.([]any)
	if !ok {
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected array, got %T", value),
		})
		return
	}

	if s.Items == nil {
		return
	}

	for i, item := range arr {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		s.Items.validate(itemPath, item, errs)
	}
}

func (s *Schema) validateString(path string, value any, errs *ValidationErrors) {
	if _, ok := value.(string); !ok {
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected string, got %T", value),
		})
	}
	// Formats are lexical hints only and are never enforced.
}

func (s *Schema) validateInteger(path string, value any, errs *ValidationErrors) {
	switch v := value.(type) {
	case json.Number:
		if _, err := v.Int64(); err != nil {
			*errs = append(*errs, &ValidationError{
				Path:    path,
				Message: "expected integer, got decimal number",
			})
		}
	case float64:
		if v != float64(int64(v)) {
			*errs = append(*errs, &ValidationError{
				Path:    path,
				Message: "expected integer, got decimal number",
			})
		}
	case int, int32, int64:
		// ok
	default:
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected integer, got %T", value),
		})
	}
}

func (s *Schema) validateNumber(path string, value any, errs *ValidationErrors) {
	switch value.(type) {
	case json.Number, float64, float32, int, int32, int64:
		// ok
	default:
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected number, got %T", value),
		})
	}
}

func (s *Schema) validateBoolean(path string, value any, errs *ValidationErrors) {
	if _, ok := value.(bool); !ok {
		*errs = append(*errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected boolean, got %T", value),
		})
	}
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
