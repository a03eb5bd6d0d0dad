package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a config log level to a logger level. Unknown values
// fall back to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// SetupLogger creates a timestamped logger writing to w. debug overrides
// level.
func SetupLogger(w io.Writer, level string, debug bool) *log.Logger {
	lvl := ParseLevel(level)
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
}

// OpenLogFile opens path for appending, creating it if needed.
func OpenLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
