// Package logging constructs slog loggers for entitymatch and defines the
// standardized attribute keys used across components. Console output is a
// compact human-readable format; json output is line-delimited for ingestion.
package logging
