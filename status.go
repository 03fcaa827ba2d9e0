package udplog

import (
	"errors"
	"strconv"
)

// Status is the integer result code of a transport entry point
type Status int

// Sentinel errors, one per failure class. Errors returned by DatagramSender wrap one of these.
var (
	ErrNetwork            = errors.New("network error")
	ErrInvalidParams      = errors.New("invalid parameters")
	ErrNotInitialized     = errors.New("not initialized")
	ErrAlreadyInitialized = errors.New("already initialized")
)

// StatusOf maps an error returned by DatagramSender to its status code.
// Unrecognized non-nil errors are reported as network errors.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrInvalidParams):
		return StatusInvalidParams
	case errors.Is(err, ErrNotInitialized):
		return StatusNotInitialized
	case errors.Is(err, ErrAlreadyInitialized):
		return StatusAlreadyInitialized
	default:
		return StatusNetworkError
	}
}

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusNetworkError:
		return "NETWORK_ERROR"
	case StatusInvalidParams:
		return "INVALID_PARAMS"
	case StatusNotInitialized:
		return "NOT_INITIALIZED"
	case StatusAlreadyInitialized:
		return "ALREADY_INITIALIZED"
	default:
		return "STATUS(" + strconv.Itoa(int(s)) + ")"
	}
}
