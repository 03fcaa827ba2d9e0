package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatter(t *testing.T) {
	timestamp := time.Date(2024, 1, 2, 3, 4, 5, 7*int(time.Millisecond), time.Local)

	t.Run("fluent API", func(t *testing.T) {
		f := New().
			TimestampFormat(time.RFC3339).
			ShowTimestamp(true).
			Color(false)

		data := f.Format(timestamp, 0, "test")
		assert.True(t, strings.HasPrefix(string(data), "[2024-01-02T03:04:05"))
		assert.True(t, f.TimestampShown())
	})

	t.Run("default layout", func(t *testing.T) {
		f := New().Color(false)

		data := f.Format(timestamp, 0, "hello")
		assert.Equal(t, "[2024-01-02 03:04:05.007] [INFO] hello\n", string(data))
	})

	t.Run("without timestamp", func(t *testing.T) {
		f := New().Color(false).ShowTimestamp(false)

		data := f.Format(timestamp, 2, "boom")
		assert.Equal(t, "[ERROR] boom\n", string(data))
	})

	t.Run("colour wraps line", func(t *testing.T) {
		f := New().ShowTimestamp(false)

		data := f.Format(timestamp, 1, "careful")
		assert.Equal(t, ColorYellow+"[WARNING] careful"+ColorReset+"\n", string(data))
	})

	t.Run("unknown level is neutral", func(t *testing.T) {
		f := New().ShowTimestamp(false)

		data := f.Format(timestamp, 42, "odd")
		assert.Equal(t, ColorReset+"[UNKNOWN] odd"+ColorReset+"\n", string(data))
	})

	t.Run("empty layout keeps current", func(t *testing.T) {
		f := New().TimestampFormat("").Color(false)

		data := f.Format(timestamp, 0, "x")
		assert.Contains(t, string(data), "03:04:05.007")
	})

	t.Run("buffer reused", func(t *testing.T) {
		f := New().Color(false).ShowTimestamp(false)

		first := string(f.Format(timestamp, 0, "first"))
		second := string(f.Format(timestamp, 0, "second"))
		assert.Equal(t, "[INFO] first\n", first)
		assert.Equal(t, "[INFO] second\n", second)
	})
}

func TestLevelToString(t *testing.T) {
	tests := []struct {
		level    int64
		expected string
		color    string
	}{
		{0, "INFO", ColorGreen},
		{1, "WARNING", ColorYellow},
		{2, "ERROR", ColorRed},
		{3, "UNKNOWN", ColorReset},
		{-1, "UNKNOWN", ColorReset},
		{1 << 40, "UNKNOWN", ColorReset},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelToString(tt.level))
		assert.Equal(t, tt.color, LevelColor(tt.level))
	}
}
