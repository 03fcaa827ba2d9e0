package compat

import (
	"fmt"

	"github.com/lixenwraith/udplog"
)

// Builder creates gnet and fasthttp adapters sharing one console logger.
// It can use an existing *udplog.ConsoleLogger or create one from a *udplog.Config.
type Builder struct {
	logger *udplog.ConsoleLogger
	logCfg *udplog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *udplog.ConsoleLogger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("udplog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Used only if no logger was provided via WithLogger; without either,
// the process-wide console logger is used.
func (b *Builder) WithConfig(cfg *udplog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*udplog.ConsoleLogger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	if b.logCfg == nil {
		b.logger = udplog.DefaultConsole()
		return b.logger, nil
	}

	l := udplog.NewConsoleLogger()
	if err := l.ApplyConfig(b.logCfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying console logger, resolving it if needed
func (b *Builder) GetLogger() (*udplog.ConsoleLogger, error) {
	return b.getLogger()
}
