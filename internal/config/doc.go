// Package config loads, normalizes, and validates ladle configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// LADLE_CACHE_DIR. The Config type centralizes every knob the CLI needs, so
// the cache directory and download settings are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
