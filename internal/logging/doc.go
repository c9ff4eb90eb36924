// Package logging provides a small structured logging facade over zerolog.
//
// The core computation packages stay free of logging concerns; the
// application, orchestration, and server layers log through the Logger
// interface so tests can substitute a buffer-backed logger.
package logging
