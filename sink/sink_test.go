package sink

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/udplog"
)

// syncBuffer guards a buffer read by the test while gnet loops write to it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func createTestSink(t *testing.T, opts ...Option) (*Server, *syncBuffer) {
	t.Helper()
	logger, err := udplog.NewBuilder().ShowTimestamp(false).ColorMode("never").Build()
	require.NoError(t, err)

	out := &syncBuffer{}
	logger.SetOutput(out)
	return New(logger, opts...), out
}

// freePort finds a UDP port that is currently unused on loopback
func freePort(t *testing.T) int {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	port := conn.LocalAddr().(*net.UDPAddr).Port
	require.NoError(t, conn.Close())
	return port
}

func TestHandle(t *testing.T) {
	t.Run("text payload", func(t *testing.T) {
		s, out := createTestSink(t)

		s.handle("127.0.0.1:5000", []byte("hello"))
		assert.Equal(t, "[INFO] from=127.0.0.1:5000 bytes=5 payload=hello\n", out.String())
		assert.Equal(t, uint64(1), s.Received())
	})

	t.Run("control characters stay on one line", func(t *testing.T) {
		s, out := createTestSink(t)

		s.handle("10.0.0.2:1", []byte("a\nb\x1b[31m"))
		assert.Equal(t, "[INFO] from=10.0.0.2:1 bytes=8 payload=a\\nb\\x1b[31m\n", out.String())
	})

	t.Run("forwarded level tag", func(t *testing.T) {
		s, out := createTestSink(t)

		s.handle("r", []byte("[2025-01-01 00:00:00.000] [ERROR] disk gone"))
		s.handle("r", []byte("[WARNING] low memory"))
		assert.Contains(t, out.String(), "[ERROR] from=r")
		assert.Contains(t, out.String(), "[WARNING] from=r")
	})

	t.Run("hex dump for binary", func(t *testing.T) {
		s, out := createTestSink(t, WithHexDump(true))

		s.handle("r", []byte{0x00, 0x01, 0xff})
		assert.Contains(t, out.String(), "payload=\\x00\\x01\\xff")
		assert.Contains(t, out.String(), "00 01 ff")
	})

	t.Run("no dump for text", func(t *testing.T) {
		s, out := createTestSink(t, WithHexDump(true))

		s.handle("r", []byte("plain"))
		assert.NotContains(t, out.String(), "[]uint8")
	})
}

func TestLevelFromPayload(t *testing.T) {
	assert.Equal(t, udplog.LevelInfo, levelFromPayload([]byte("nothing here")))
	assert.Equal(t, udplog.LevelError, levelFromPayload([]byte("[ERROR] x")))
	assert.Equal(t, udplog.LevelWarning, levelFromPayload([]byte("[WARNING] x")))
	// Tags deep in the payload are ignored
	assert.Equal(t, udplog.LevelInfo, levelFromPayload(append(bytes.Repeat([]byte("a"), 100), "[ERROR]"...)))
}

func TestStopBeforeRun(t *testing.T) {
	s, _ := createTestSink(t)
	assert.ErrorIs(t, s.Stop(context.Background()), ErrNotRunning)
	assert.False(t, s.Running())
}

func TestSinkReceivesFromSender(t *testing.T) {
	s, out := createTestSink(t)
	port := freePort(t)

	done := make(chan error, 1)
	go func() {
		done <- s.Run("127.0.0.1:" + strconv.Itoa(port))
	}()
	require.Eventually(t, s.Running, 5*time.Second, 10*time.Millisecond)

	sender := udplog.NewDatagramSender()
	require.NoError(t, sender.Initialize())
	defer sender.Cleanup()

	require.NoError(t, sender.Send("127.0.0.1", port, []byte("hello"), 5))
	require.Eventually(t, func() bool { return s.Received() == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "bytes=5 payload=hello")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sink did not stop")
	}
}
