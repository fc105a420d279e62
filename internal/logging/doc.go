// Package logging assembles the structured slog loggers used across the
// pipeline.
//
// It centralizes level and format plumbing and exposes context-aware helpers
// so pipeline code can automatically tag log lines with image IDs and stage
// names. A no-op logger is provided for tests and wiring code that cannot
// fail. Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
