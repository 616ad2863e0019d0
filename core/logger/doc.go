// Package logger provides a structured logging facility based on Zap.
//
// Sync runs narrate every decision through it: which pass matched, with which
// candidate and score, and a final summary line. A run logger carries a run_id
// field (WithRunID); HTTP request loggers carry the request's ray_id (WithRayID).
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	runLog := logger.WithRunID(log, runID)
//	runLog.Info("Sync started")
package logger
