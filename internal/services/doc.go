// Package services defines shared utilities consumed by the batch stages.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers, role-set stems, and stage
//     names for logging.
//   - Structured error markers plus the Wrap helper that classify failures as
//     batch-fatal (missing roles, configuration) or local to one role set or
//     write attempt (decode, dimension, encode, filesystem).
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across the pipeline.
package services
