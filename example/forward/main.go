package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/udplog"
	"github.com/lixenwraith/udplog/formatter"
)

// Logs a few lines locally and forwards each one to a sink on 127.0.0.1:9999.
// Run `udplog-sink -listen 127.0.0.1:9999` first to see them arrive.
func main() {
	if status := udplog.InitializeTransport(); status != udplog.StatusSuccess {
		fmt.Fprintf(os.Stderr, "init failed: %s (%s)\n", status, udplog.GetLastOutcome())
		os.Exit(1)
	}
	defer udplog.CleanupTransport()

	lines := []struct {
		level int64
		msg   string
	}{
		{udplog.LevelInfo, "service started"},
		{udplog.LevelWarning, "cache miss rate above 40%"},
		{udplog.LevelError, "upstream unreachable"},
	}

	for _, l := range lines {
		udplog.LogAtLevel(l.level, l.msg)

		payload := []byte(fmt.Sprintf("[%s] %s", formatter.LevelToString(l.level), l.msg))
		if status := udplog.SendDatagram("127.0.0.1", 9999, payload, len(payload)); status != udplog.StatusSuccess {
			udplog.LogWarning("forward failed: " + udplog.GetLastOutcome())
		}
	}

	udplog.SetLogTimestamp(0)
	udplog.LogInfo("done, last outcome: " + udplog.GetLastOutcome())
}
