// Package logger provides leveled console logging for the showroom.
// Debug, Info and Warn messages are printed to stderr only in verbose mode
// (--verbose); Error messages are always printed.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	log     = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          zerolog.SyncWriter(w),
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(zerolog.DebugLevel)
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Debug().Msgf(format, args...)
	}
}

// Fields are structured key/value pairs attached to a log line.
type Fields map[string]any

// DebugFields prints msg with fields if verbose mode is enabled.
func DebugFields(msg string, fields Fields) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Debug().Fields(map[string]any(fields)).Msg(msg)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Debug().Str("section", name).Msg("===")
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Info().Msgf(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Warn().Msgf(format, args...)
	}
}

// Error prints an error message regardless of verbose mode.
func Error(err error, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Error().Err(err).Msgf(format, args...)
}
