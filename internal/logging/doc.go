// Package logging assembles the structured slog loggers used across ladle.
//
// It owns the console and JSON handlers along with level and output plumbing,
// and defines the standardized field keys so components tag log lines the
// same way. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape and routing.
package logging
