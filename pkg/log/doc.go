// Package log provides the logging facade used by boundcheck components.
//
// Components log through the Logger interface so they do not depend on a
// concrete logging library. A zerolog adapter is provided for the CLI and a
// no-op logger for tests and library use.
//
// # Usage
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//	logger.Warn("overflow detected", log.String("domain", "uint8"), log.Uint64("step", 5))
package log
