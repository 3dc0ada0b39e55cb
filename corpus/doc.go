// Package corpus decodes example documents into the value shapes the
// inference engine consumes.
//
// The core in package infer never touches files or readers; corpus is the
// collaborator that owns input decoding. JSON input may be a single
// document, a top-level array of examples, or NDJSON with one example per
// line:
//
//	examples, err := corpus.ReadJSON(f)
//	if err != nil {
//	    return err
//	}
//	s := infer.Infer(examples)
//
// YAML input is normalized to the same shapes, so schemas inferred from
// YAML and from equivalent JSON are identical. All numbers surface as
// json.Number, preserving the integer/number distinction.
package corpus
