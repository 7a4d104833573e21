// Package logging provides the structured logger shared by every package.
// The terminal belongs to the watch simulator, so output normally goes to a
// file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

var (
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	loggerMu      sync.RWMutex
)

// Config holds logger configuration.
type Config struct {
	Level  slog.Level // Minimum log level
	JSON   bool       // Use JSON output format
	Output io.Writer  // Output destination (default: discard)
}

// Init installs a logger built from cfg as the package default and returns it.
func Init(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = io.Discard
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	l := slog.New(handler)
	loggerMu.Lock()
	defaultLogger = l
	loggerMu.Unlock()
	return l
}

// Logger returns the current logger instance.
func Logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// With returns a logger with additional attributes.
func With(args ...any) *slog.Logger {
	return Logger().With(args...)
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// DefaultFile returns the default log file path, creating its directory.
func DefaultFile(app string) (string, error) {
	return xdg.StateFile(app + "/" + app + ".log")
}

// OpenFile opens path for appending, creating it when missing. An empty
// path resolves to DefaultFile.
func OpenFile(app, path string) (*os.File, error) {
	if path == "" {
		var err error
		if path, err = DefaultFile(app); err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Common structured logging fields.
const (
	KeyOperation = "op"
	KeyError     = "error"
	KeyReason    = "reason"
	KeySurface   = "surface"
	KeyUnits     = "units"
	KeyPercent   = "percent"
	KeyTemp      = "temperature"
	KeyCondition = "conditions"
	KeyEnvelope  = "envelope"
)
