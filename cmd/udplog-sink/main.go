package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/udplog"
	"github.com/lixenwraith/udplog/sink"
)

func main() {
	configFile := flag.String("config", "udplog.toml", "TOML file with an [udplog] table")
	listen := flag.String("listen", "0.0.0.0:9999", "UDP address to receive datagrams on")
	hexDump := flag.Bool("hexdump", false, "dump binary payloads")
	debug := flag.Bool("debug", false, "show gnet engine debug output")
	flag.Parse()

	// Remaining arguments are config overrides understood by the loader
	cfg, err := udplog.NewConfigFromArgs(*configFile, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := udplog.ConfigureConsole(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure console: %v\n", err)
		os.Exit(1)
	}

	logger := udplog.DefaultConsole()
	server := sink.New(logger, sink.WithHexDump(*hexDump), sink.WithEngineDebug(*debug))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(*listen)
	}()

	select {
	case err := <-errChan:
		logger.Logf(udplog.LevelError, "sink exited: %v", err)
		os.Exit(1)
	case sig := <-sigChan:
		logger.Logf(udplog.LevelInfo, "received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Logf(udplog.LevelWarning, "stop: %v", err)
	}
	logger.Logf(udplog.LevelInfo, "handled %d datagrams", server.Received())
}
