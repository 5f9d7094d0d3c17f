// Package logging constructs slog loggers for the CLI and scan worker.
//
// Two output formats are supported: a human-oriented console handler used on
// terminals and a line-delimited JSON handler for log files and scripting.
// Helpers mirror the slog attribute constructors so call sites stay terse.
package logging
