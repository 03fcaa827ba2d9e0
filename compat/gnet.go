package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/udplog"
)

// GnetAdapter wraps udplog.ConsoleLogger to implement the gnet logging.Logger interface
type GnetAdapter struct {
	logger       *udplog.ConsoleLogger
	debug        bool
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *udplog.ConsoleLogger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithDebug forwards gnet debug messages at info level instead of dropping them
func WithDebug(enable bool) GnetOption {
	return func(a *GnetAdapter) {
		a.debug = enable
	}
}

// Debugf logs gnet debug output when enabled, the console has no debug level
func (a *GnetAdapter) Debugf(format string, args ...any) {
	if !a.debug {
		return
	}
	a.logger.Log(udplog.LevelInfo, "[gnet] debug: "+fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Log(udplog.LevelInfo, "[gnet] "+fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Log(udplog.LevelWarning, "[gnet] "+fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Log(udplog.LevelError, "[gnet] "+fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and triggers fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Log(udplog.LevelError, "[gnet] fatal: "+msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
