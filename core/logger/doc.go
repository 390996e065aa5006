// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger instance for both serving mode (JSON output
// for log aggregation) and CLI verification runs (colored console output).
//
// # Context Awareness
//
// The WithRayID helper extracts the ray_id from a Fiber context and attaches
// it to the log entry, so every log line produced while serving a
// verification request can be correlated back to that request.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
package logger
