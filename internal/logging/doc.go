// Package logging assembles the structured slog loggers used across
// docshard commands. It owns the console and JSON handlers and centralizes
// level and output plumbing; prefer these constructors over hand-rolled
// slog setup so every component emits diagnostics with the same shape.
//
// All log output goes to stderr (optionally duplicated to a file): stdout
// stays reserved for data, and the shard files are the only product of a
// run.
package logging
