// Package logging builds the charmbracelet logger used for decode tracing
// and command output. Configuration comes from the environment.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	envLevel  = "JVMDIS_LOG_LEVEL"
	envPrefix = "JVMDIS_LOG_PREFIX"
	envToFile = "JVMDIS_LOG_TO_FILE"
)

// LoggerCloser wraps a logger and provides a Close method for cleanup
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the underlying writer if it's closeable
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to a level. Anything else is
// info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewLoggerWithWriter creates a logger writing to w. The level is taken from
// JVMDIS_LOG_LEVEL unless fallback is non-empty and the variable is unset.
func NewLoggerWithWriter(w io.Writer, fallback string) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	level, ok := os.LookupEnv(envLevel)
	if !ok {
		level = fallback
	}
	lg.SetLevel(ParseLevel(level))

	prefix := os.Getenv(envPrefix)
	if prefix == "" {
		prefix = "jvmdis "
	}

	var closer io.Closer
	if c, ok := w.(io.Closer); ok && w != os.Stderr && w != os.Stdout {
		closer = c
	}

	return &LoggerCloser{
		Logger: lg.WithPrefix(prefix),
		closer: closer,
	}
}

// NewLogger creates a new logger based on environment variables
// JVMDIS_LOG_LEVEL: debug, info, warn, error (default: fallback, then info)
// JVMDIS_LOG_PREFIX: prefix for log messages (default: "jvmdis ")
// JVMDIS_LOG_TO_FILE: when set to "1", logs to a timestamped file instead of stderr
func NewLogger(fallback string) *LoggerCloser {
	output := io.Writer(os.Stderr)

	if os.Getenv(envToFile) == "1" {
		timestamp := time.Now().Format("20060102-150405")
		logFile := fmt.Sprintf("jvmdis-%s-debug.log", timestamp)

		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			output = f
		}
		// stderr when the file cannot be created
	}

	return NewLoggerWithWriter(output, fallback)
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return ParseLevel(os.Getenv(envLevel)) == log.DebugLevel
}
