// Package logger provides structured logging for the HTTP engine using
// zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The engine tags every
// call with a call_id so transfer events can be correlated across the
// transport and bridge layers.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("engine")
//	log.Debug("call completed", logger.Fields("status", 200))
package logger
