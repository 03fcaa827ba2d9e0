package udplog

// Log level constants
const (
	LevelInfo    int64 = 0
	LevelWarning int64 = 1
	LevelError   int64 = 2
)

// Status codes reported by the package-level transport entry points
const (
	StatusSuccess            Status = 0
	StatusNetworkError       Status = -1
	StatusInvalidParams      Status = -2
	StatusNotInitialized     Status = -3
	StatusAlreadyInitialized Status = -4
)

// Last-outcome messages recorded by the sender
const (
	outcomeSuccess            = "Success"
	outcomeAlreadyInitialized = "UDP already initialized"
	outcomeSocketFailed       = "Failed to create UDP socket"
	outcomeInvalidParams      = "Invalid parameters"
	outcomeNotInitialized     = "UDP not initialized"
	outcomeInvalidAddress     = "Invalid destination address"
	outcomeSendFailed         = "Failed to send UDP packet"
	outcomeCleanedUp          = "Cleaned up"
)

// Port bounds accepted by Send
const (
	minPort = 1
	maxPort = 65535
)
