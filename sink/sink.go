// Package sink receives forwarded log datagrams over UDP and prints them through a console logger.
package sink

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/udplog"
	"github.com/lixenwraith/udplog/compat"
	"github.com/lixenwraith/udplog/sanitizer"
)

// ErrNotRunning is returned by Stop before the engine has booted
var ErrNotRunning = errors.New("sink: engine not running")

// Server is a gnet event handler that logs every received datagram
type Server struct {
	gnet.BuiltinEventEngine

	logger  *udplog.ConsoleLogger
	hexDump bool
	debug   bool

	sanMu sync.Mutex
	san   *sanitizer.Sanitizer

	engMu  sync.Mutex
	eng    gnet.Engine
	booted bool

	received atomic.Uint64
}

// Option configures a Server
type Option func(*Server)

// WithHexDump appends a hex dump for payloads that are not printable text
func WithHexDump(enable bool) Option {
	return func(s *Server) {
		s.hexDump = enable
	}
}

// WithEngineDebug forwards gnet debug output to the console
func WithEngineDebug(enable bool) Option {
	return func(s *Server) {
		s.debug = enable
	}
}

// New creates a sink logging through logger
func New(logger *udplog.ConsoleLogger, opts ...Option) *Server {
	s := &Server{
		logger: logger,
		san:    sanitizer.New().Policy(sanitizer.PolicyLine),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves on addr (host:port, or a full udp:// address) until Stop is called
func (s *Server) Run(addr string, opts ...gnet.Option) error {
	if !strings.HasPrefix(addr, "udp://") {
		addr = "udp://" + addr
	}

	adapter := compat.NewGnetAdapter(s.logger,
		compat.WithDebug(s.debug),
		compat.WithFatalHandler(func(msg string) {}),
	)

	base := []gnet.Option{
		gnet.WithMulticore(true),
		gnet.WithReusePort(true),
		gnet.WithLogger(adapter),
	}

	if err := gnet.Run(s, addr, append(base, opts...)...); err != nil {
		return fmt.Errorf("sink: serve %s: %w", addr, err)
	}
	return nil
}

// Stop shuts the engine down
func (s *Server) Stop(ctx context.Context) error {
	s.engMu.Lock()
	eng, booted := s.eng, s.booted
	s.engMu.Unlock()

	if !booted {
		return ErrNotRunning
	}
	return eng.Stop(ctx)
}

// Running reports whether the engine has booted
func (s *Server) Running() bool {
	s.engMu.Lock()
	defer s.engMu.Unlock()
	return s.booted
}

// Received returns the number of datagrams handled so far
func (s *Server) Received() uint64 {
	return s.received.Load()
}

// OnBoot records the engine so Stop can reach it
func (s *Server) OnBoot(eng gnet.Engine) gnet.Action {
	s.engMu.Lock()
	s.eng = eng
	s.booted = true
	s.engMu.Unlock()

	s.logger.LogInfo("sink: listening for datagrams")
	return gnet.None
}

// OnShutdown marks the engine stopped
func (s *Server) OnShutdown(eng gnet.Engine) {
	s.engMu.Lock()
	s.booted = false
	s.engMu.Unlock()

	s.logger.LogInfo("sink: stopped")
}

// OnTraffic handles one datagram; the buffer is only valid inside the callback
func (s *Server) OnTraffic(c gnet.Conn) gnet.Action {
	payload, err := c.Next(-1)
	if err != nil {
		s.logger.Logf(udplog.LevelWarning, "sink: read failed: %v", err)
		return gnet.None
	}

	remote := "unknown"
	if addr := c.RemoteAddr(); addr != nil {
		remote = addr.String()
	}

	s.handle(remote, payload)
	return gnet.None
}

// handle renders a datagram as a single console line, plus a dump when configured
func (s *Server) handle(remote string, payload []byte) {
	s.received.Add(1)

	s.sanMu.Lock()
	text := s.san.Payload(payload)
	s.sanMu.Unlock()

	msg := fmt.Sprintf("from=%s bytes=%d payload=%s", remote, len(payload), text)
	if s.hexDump && !sanitizer.IsText(payload) {
		msg += "\n" + sanitizer.HexDump(payload)
	}

	s.logger.Log(levelFromPayload(payload), msg)
}

// levelFromPayload reuses the level tag of a forwarded console line when present
func levelFromPayload(payload []byte) int64 {
	head := payload
	if len(head) > 64 {
		head = head[:64]
	}
	s := string(head)

	switch {
	case strings.Contains(s, "[ERROR]"):
		return udplog.LevelError
	case strings.Contains(s, "[WARNING]"):
		return udplog.LevelWarning
	default:
		return udplog.LevelInfo
	}
}
