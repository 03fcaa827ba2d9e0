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
	"github.com/lixenwraith/udplog/relay"
)

func main() {
	configFile := flag.String("config", "udplog.toml", "TOML file with an [udplog] table")
	listen := flag.String("listen", "127.0.0.1:8080", "HTTP address to accept requests on")
	flag.Parse()

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

	if status := udplog.InitializeTransport(); status != udplog.StatusSuccess {
		logger.Logf(udplog.LevelError, "transport init failed (%s): %s", status, udplog.GetLastOutcome())
		os.Exit(1)
	}
	defer udplog.CleanupTransport()

	r := relay.New(udplog.DefaultSender(), logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- r.ListenAndServe(*listen)
	}()

	select {
	case err := <-errChan:
		logger.Logf(udplog.LevelError, "relay exited: %v", err)
		return
	case sig := <-sigChan:
		logger.Logf(udplog.LevelInfo, "received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Shutdown(ctx); err != nil {
		logger.Logf(udplog.LevelWarning, "shutdown: %v", err)
	}
}
