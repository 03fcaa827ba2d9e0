package udplog

// Process-wide instances, created once at package initialization and never replaced.
// The package-level functions below form the flat entry point surface for host bindings.
var (
	defaultConsole = NewConsoleLogger()
	defaultSender  = NewDatagramSender()
)

// DefaultConsole returns the process-wide console logger
func DefaultConsole() *ConsoleLogger {
	return defaultConsole
}

// DefaultSender returns the process-wide datagram sender
func DefaultSender() *DatagramSender {
	return defaultSender
}

// ConfigureConsole applies a configuration to the process-wide console logger
func ConfigureConsole(cfg *Config) error {
	return defaultConsole.ApplyConfig(cfg)
}

// InitializeTransport opens the process-wide UDP socket
func InitializeTransport() Status {
	return StatusOf(defaultSender.Initialize())
}

// SendDatagram sends payload[:length] to address:port through the process-wide socket
func SendDatagram(address string, port int, payload []byte, length int) Status {
	return StatusOf(defaultSender.Send(address, port, payload, length))
}

// CleanupTransport closes the process-wide UDP socket
func CleanupTransport() {
	defaultSender.Cleanup()
}

// GetLastOutcome returns the outcome message of the most recent transport operation
func GetLastOutcome() string {
	return defaultSender.LastOutcome()
}

// LogInfo logs a message at info level
func LogInfo(message string) {
	defaultConsole.LogInfo(message)
}

// LogWarning logs a message at warning level
func LogWarning(message string) {
	defaultConsole.LogWarning(message)
}

// LogError logs a message at error level
func LogError(message string) {
	defaultConsole.LogError(message)
}

// LogAtLevel logs a message at an arbitrary level, unknown levels are tagged UNKNOWN
func LogAtLevel(level int64, message string) {
	defaultConsole.Log(level, message)
}

// SetLogTimestamp enables timestamps when enabled is non-zero
func SetLogTimestamp(enabled int) {
	defaultConsole.SetTimestampEnabled(enabled != 0)
}
