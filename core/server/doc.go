// Package server holds the configuration of the read-only mapping API started by
// the serve command.
package server
