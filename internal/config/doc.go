// Package config loads, normalizes, and validates legacy2pbr configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: source/output/final directories, target formats, and the
// channel-repacking policies.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format lists, and clear validation errors.
package config
