// Package formatter renders single console log lines for udplog.
package formatter

import (
	"time"
)

// DefaultTimestampFormat renders local time with millisecond precision
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// ANSI escape sequences used for level colouring
const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
)

// Formatter manages the buffered rendering of console log lines.
// It is not safe for concurrent use; callers serialize access.
type Formatter struct {
	timestampFormat string
	showTimestamp   bool
	color           bool
	buf             []byte
}

// New creates a formatter with timestamps and colour enabled
func New() *Formatter {
	return &Formatter{
		timestampFormat: DefaultTimestampFormat,
		showTimestamp:   true,
		color:           true,
		buf:             make([]byte, 0, 256),
	}
}

// TimestampFormat sets the timestamp layout, empty keeps the current one
func (f *Formatter) TimestampFormat(format string) *Formatter {
	if format != "" {
		f.timestampFormat = format
	}
	return f
}

// ShowTimestamp sets whether the bracketed timestamp segment is rendered
func (f *Formatter) ShowTimestamp(show bool) *Formatter {
	f.showTimestamp = show
	return f
}

// Color sets whether ANSI colour sequences wrap the line
func (f *Formatter) Color(enable bool) *Formatter {
	f.color = enable
	return f
}

// TimestampShown reports the current timestamp setting
func (f *Formatter) TimestampShown() bool {
	return f.showTimestamp
}

// Format renders "[timestamp] [LEVEL] message\n", wrapped in the level colour.
// The returned slice is reused by the next call.
func (f *Formatter) Format(timestamp time.Time, level int64, message string) []byte {
	f.Reset()

	if f.color {
		f.buf = append(f.buf, LevelColor(level)...)
	}

	if f.showTimestamp {
		f.buf = append(f.buf, '[')
		f.buf = timestamp.AppendFormat(f.buf, f.timestampFormat)
		f.buf = append(f.buf, ']', ' ')
	}

	f.buf = append(f.buf, '[')
	f.buf = append(f.buf, LevelToString(level)...)
	f.buf = append(f.buf, ']', ' ')
	f.buf = append(f.buf, message...)

	// Terminal colour state is always restored before the newline
	if f.color {
		f.buf = append(f.buf, ColorReset...)
	}
	f.buf = append(f.buf, '\n')

	return f.buf
}

// Reset clears the formatter buffer for reuse
func (f *Formatter) Reset() {
	f.buf = f.buf[:0]
}

// LevelToString converts integer level values to their display tag
func LevelToString(level int64) string {
	switch level {
	case 0:
		return "INFO"
	case 1:
		return "WARNING"
	case 2:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LevelColor returns the ANSI sequence for a level, reset for unknown levels
func LevelColor(level int64) string {
	switch level {
	case 0:
		return ColorGreen
	case 1:
		return ColorYellow
	case 2:
		return ColorRed
	default:
		return ColorReset
	}
}
