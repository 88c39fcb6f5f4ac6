// Package log provides a logging abstraction for sheaf components.
//
// The Logger interface can be implemented by any logging library. A
// zerolog adapter is provided for production use and a no-op logger for
// tests:
//
//	logger := log.NewZerolog()
//	logger.Info("bundle written", log.String("path", p), log.Int64("bytes", n))
//
//	quiet := log.NewNoop()
package log
