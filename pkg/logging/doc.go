// Package logging provides structured logging for the trajectory pipeline,
// wrapping log/slog with chainable context fields.
//
// # Basic usage
//
//	logger := logging.New(logging.Config{Level: "info", Pretty: true})
//	run := logger.WithRunID(runID)
//	run.WithStage("ingest").WithProcessID("p1").Info("dropped non-DAG tree")
//
// # Log levels
//
// debug, info, warn, error, matching slog's levels. Anything below the
// configured Level is a no-op.
//
// # Context fields
//
// WithRunID, WithProcessID, WithTreeName, and WithStage each return a new
// Logger carrying one more attribute; they compose by chaining. WithField
// and WithFields attach arbitrary structured values, and WithError attaches
// an error under the "error" key.
//
// # Output
//
// JSON by default (Config.Pretty selects slog's text handler instead), to
// any io.Writer. FromContext/WithContext propagate a Logger through a
// context.Context, falling back to a default logger when none is set.
package logging
