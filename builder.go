package udplog

// Builder provides a fluent API for building console logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new ConsoleLogger with the specified configuration.
func (b *Builder) Build() (*ConsoleLogger, error) {
	logger := NewConsoleLogger()

	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// ShowTimestamp sets whether lines start with a bracketed timestamp.
func (b *Builder) ShowTimestamp(show bool) *Builder {
	b.cfg.ShowTimestamp = show
	return b
}

// TimestampFormat sets the Go time layout of the timestamp.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// ConsoleTarget sets the output stream, "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ColorMode sets colouring to "always", "never", or "auto".
func (b *Builder) ColorMode(mode string) *Builder {
	b.cfg.ColorMode = mode
	return b
}

// Example usage:
// logger, err := udplog.NewBuilder().
//
//	ConsoleTarget("stderr").
//	ColorMode("auto").
//	Build()
//
// if err == nil {
//
//	 logger.LogInfo("Logger initialized successfully")
//
// }
