package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ReadJSON decodes a stream of example documents from r. Three layouts are
// accepted: a single JSON document (one example), a top-level array (one
// example per element), and NDJSON (one example per line).
//
// Numbers decode as json.Number so the integer/number distinction survives
// into inference.
func ReadJSON(r io.Reader) ([]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read examples: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	// Try the whole input as one document first: a top-level array is a
	// batch, anything else is a single example. Pretty-printed documents
	// span lines, so this must come before line-delimited decoding. When
	// the whole input does not decode as one document (NDJSON, including
	// streams of array-valued lines), fall through to per-line decoding.
	var single any
	if err := decodeJSON(trimmed, &single); err == nil {
		if batch, ok := single.([]any); ok {
			return batch, nil
		}
		return []any{single}, nil
	}

	var examples []any
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var value any
		if err := decodeJSON([]byte(text), &value); err != nil {
			return nil, fmt.Errorf("decode example on line %d: %w", line, err)
		}
		examples = append(examples, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan examples: %w", err)
	}
	return examples, nil
}

// decodeJSON decodes a single JSON value with number preservation and
// rejects trailing garbage.
func decodeJSON(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// ReadYAML decodes YAML example documents from r. Multi-document streams
// yield one example per document; a top-level sequence in a single document
// yields one example per element. Decoded values are normalized to the same
// shapes ReadJSON produces, with integers as json.Number.
func ReadYAML(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)

	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode YAML document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, normalizeYAML(doc))
	}

	// A lone top-level sequence is a batch of examples, mirroring ReadJSON.
	if len(docs) == 1 {
		if batch, ok := docs[0].([]any); ok {
			return batch, nil
		}
	}
	return docs, nil
}

// normalizeYAML rewrites YAML-decoded values into the JSON value shapes the
// inferencer understands.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	case int:
		return json.Number(fmt.Sprintf("%d", val))
	case int64:
		return json.Number(fmt.Sprintf("%d", val))
	case uint64:
		return json.Number(fmt.Sprintf("%d", val))
	default:
		return v
	}
}
