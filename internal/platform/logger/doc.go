// Package logger provides structured logging functionality for the application.
//
// It uses the standard library log/slog package to implement structured JSON
// logging with a configurable level, and carries request-scoped loggers
// through context.Context so that handlers, the facade and the stores all
// emit lines tagged with the same trace id.
package logger
