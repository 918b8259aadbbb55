// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both the command-line tool and the
// HTTP server. Logs always go to stderr, so a report printed on stdout can be
// piped without log noise.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (Request ID) from a Fiber context and
// attaches it to the log entry, so all logs for one request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warning (warn), error, critical
//   - Format: json or console
//
// Debug level selects Zap's development configuration; every other level uses
// the production configuration.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Parsing floor plan", zap.String("file", path))
package logger
