// Package roleset implements the filename-convention grammar that drives the
// batch: role suffix tokens (_nohq, _smdi, _as, _co), the supported image
// extensions, stem derivation for output naming, and the modulo pairing of
// role lists into conversion sets.
//
// Matching is deliberately case-insensitive for both suffix and extension,
// and matched lists are sorted by name so runs are reproducible regardless of
// directory-enumeration order.
package roleset
