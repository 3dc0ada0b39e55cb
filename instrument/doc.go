// Package instrument wraps schema inference with pipeline middleware.
//
// The core inferencer is pure and never fails, but services that embed it
// still want timing, tracing, panic isolation, and rate control around the
// call. Middleware follows the standard pattern where each middleware wraps
// the next InferFunc in the chain:
//
//	run := instrument.Chain(
//	    instrument.Recover(),
//	    instrument.RunID(),
//	    instrument.Logging(logger),
//	)(instrument.Infer())
//
//	s, err := run(ctx, examples)
//
// # Available Middleware
//
//   - Recover: Catches panics and converts them to errors
//   - RunID: Injects unique run IDs into the context
//   - Logging: Logs run timing and example counts
//   - OTel: OpenTelemetry spans and metrics per run
//   - RateLimit: Token-bucket limiting for request-path inference
//   - SizeLimit: Rejects batches above an example count
//   - Timeout: Enforces a deadline on each run
//
// # Default Stack
//
// A pre-configured stack covers the common case:
//
//	run := instrument.Use(instrument.DefaultStack(logger)...).Then(instrument.Infer())
package instrument
