// Package logger provides structured logging for restkit built on zerolog.
//
// Loggers are plain values with no global state: construct one, scope it with
// WithComponent/WithFields, and hand it to whatever needs it. Components that
// receive no logger fall back to Nop(), so logging never becomes a required
// dependency of a test run.
//
//	log := logger.NewDefault("api-tests")
//	log.Info("suite starting", logger.Fields("base_url", cfg.BaseURL))
package logger
