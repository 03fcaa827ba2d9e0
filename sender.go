package udplog

import (
	"io"
	"net"
	"net/netip"
	"sync"
)

// datagramConn is the part of *net.UDPConn the sender relies on
type datagramConn interface {
	WriteToUDPAddrPort(b []byte, addr netip.AddrPort) (int, error)
	Close() error
}

// DatagramSender owns at most one outbound UDP socket and performs fire-and-forget sends.
// Every method holds the sender's lock for its full duration, so a slow Send delays
// a concurrent Initialize or Cleanup and vice versa.
type DatagramSender struct {
	mu          sync.Mutex
	conn        datagramConn
	initialized bool // mirrors conn != nil
	lastOutcome string
	open        func() (datagramConn, error)
}

// NewDatagramSender creates an uninitialized sender
func NewDatagramSender() *DatagramSender {
	return &DatagramSender{open: openUDP4}
}

// openUDP4 opens an unconnected IPv4 UDP socket on an ephemeral port
func openUDP4() (datagramConn, error) {
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Initialize opens the sender's socket.
// Returns ErrAlreadyInitialized if a socket is already open; the open socket is kept.
func (s *DatagramSender) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return s.fail(outcomeAlreadyInitialized, ErrAlreadyInitialized, nil)
	}

	conn, err := s.open()
	if err != nil {
		return s.fail(outcomeSocketFailed, ErrNetwork, err)
	}

	s.conn = conn
	s.initialized = true
	s.lastOutcome = outcomeSuccess
	return nil
}

// Send transmits payload[:length] as a single datagram to address:port.
// Parameters are validated before the initialization check. The address must be
// an IPv4 dotted quad; anything else fails with ErrNetwork without sending.
func (s *DatagramSender) Send(address string, port int, payload []byte, length int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if address == "" || payload == nil || length <= 0 || length > len(payload) ||
		port < minPort || port > maxPort {
		return s.fail(outcomeInvalidParams, ErrInvalidParams, nil)
	}

	if !s.initialized || s.conn == nil {
		return s.fail(outcomeNotInitialized, ErrNotInitialized, nil)
	}

	addr, err := netip.ParseAddr(address)
	if err != nil || !addr.Is4() {
		s.lastOutcome = outcomeInvalidAddress + ": " + address
		return fmtErrorf("%s '%s': %w", outcomeInvalidAddress, address, ErrNetwork)
	}

	n, err := s.conn.WriteToUDPAddrPort(payload[:length], netip.AddrPortFrom(addr, uint16(port)))
	if err != nil {
		return s.fail(outcomeSendFailed, ErrNetwork, err)
	}
	if n != length {
		return s.fail(outcomeSendFailed, ErrNetwork, io.ErrShortWrite)
	}

	s.lastOutcome = outcomeSuccess
	return nil
}

// Cleanup closes the socket if one is open. Safe to call any number of times.
func (s *DatagramSender) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}

	s.initialized = false
	s.lastOutcome = outcomeCleanedUp
}

// LastOutcome returns the message recorded by the most recent operation, or "" if none ran yet
func (s *DatagramSender) LastOutcome() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutcome
}

// Active reports whether a socket is currently open
func (s *DatagramSender) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// fail records the outcome and returns an error wrapping kind, assuming mu is held
func (s *DatagramSender) fail(outcome string, kind error, cause error) error {
	if cause != nil {
		s.lastOutcome = outcome + ": " + cause.Error()
		return fmtErrorf("%s: %w: %w", outcome, kind, cause)
	}
	s.lastOutcome = outcome
	return fmtErrorf("%s: %w", outcome, kind)
}
