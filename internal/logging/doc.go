// Package logging assembles the structured slog loggers used across etude.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so handler code can tag log
// lines with song, group, and correlation identifiers without repeating
// attribute wiring. A no-op logger is provided for tests.
package logging
