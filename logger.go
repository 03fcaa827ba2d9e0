package udplog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/udplog/formatter"
)

// ConsoleLogger writes level-tagged, optionally timestamped and coloured lines to a console stream.
// All methods are safe for concurrent use; one call's output is never split by another.
type ConsoleLogger struct {
	mu        sync.Mutex
	cfg       *Config
	formatter *formatter.Formatter
	out       io.Writer
	now       func() time.Time
}

// NewConsoleLogger creates a logger writing to stdout with default settings
func NewConsoleLogger() *ConsoleLogger {
	l := &ConsoleLogger{
		formatter: formatter.New(),
		now:       time.Now,
	}
	l.applyConfig(DefaultConfig())
	return l
}

// ApplyConfig applies a validated configuration to the logger
func (l *ConsoleLogger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.applyConfig(cfg.Clone())
	return nil
}

// GetConfig returns a copy of current configuration
func (l *ConsoleLogger) GetConfig() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.Clone()
}

// SetOutput redirects console output, nil discards it.
// A later ApplyConfig switches back to the configured console target.
func (l *ConsoleLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// SetTimestampEnabled toggles the timestamp segment for subsequent lines
func (l *ConsoleLogger) SetTimestampEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cfg.ShowTimestamp = enabled
	l.formatter.ShowTimestamp(enabled)
}

// TimestampEnabled reports whether lines currently carry a timestamp
func (l *ConsoleLogger) TimestampEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.formatter.TimestampShown()
}

// Log writes one line at the given level. Empty messages are skipped.
// Unrecognized levels are tagged UNKNOWN. Write errors are not reported.
func (l *ConsoleLogger) Log(level int64, message string) {
	if message == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := l.formatter.Format(l.now(), level, message)
	_, _ = l.out.Write(line)
}

// Logf formats according to a format specifier and logs the result
func (l *ConsoleLogger) Logf(level int64, format string, args ...any) {
	l.Log(level, fmt.Sprintf(format, args...))
}

// LogInfo logs a message at info level
func (l *ConsoleLogger) LogInfo(message string) {
	l.Log(LevelInfo, message)
}

// LogWarning logs a message at warning level
func (l *ConsoleLogger) LogWarning(message string) {
	l.Log(LevelWarning, message)
}

// LogError logs a message at error level
func (l *ConsoleLogger) LogError(message string) {
	l.Log(LevelError, message)
}

// applyConfig is the internal implementation for applying configuration, assuming mu is held
func (l *ConsoleLogger) applyConfig(cfg *Config) {
	l.cfg = cfg

	var stream *os.File
	if cfg.ConsoleTarget == "stderr" {
		stream = os.Stderr
	} else {
		stream = os.Stdout
	}
	l.out = stream

	l.formatter.
		TimestampFormat(cfg.TimestampFormat).
		ShowTimestamp(cfg.ShowTimestamp).
		Color(colorEnabled(cfg.ColorMode, stream))
}

// colorEnabled resolves a color_mode against the target stream
func colorEnabled(mode string, stream *os.File) bool {
	switch mode {
	case "never":
		return false
	case "auto":
		fd := stream.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return true
	}
}
