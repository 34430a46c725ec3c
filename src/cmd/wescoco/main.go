// FILE: wescoco/src/cmd/wescoco/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wescoco/src/internal/config"
	"wescoco/src/internal/pipeline"
	"wescoco/src/internal/version"

	"github.com/lixenwraith/log"
	"golang.org/x/term"
)

var logger *log.Logger

func main() {
	// Parse flags first to get quiet mode early
	flagCfg, err := ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}

	InitOutputHandler(flagCfg.Quiet)

	if flagCfg.ShowVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Set config file environment if specified
	if flagCfg.ConfigFile != "" {
		os.Setenv("WESCOCO_CONFIG_FILE", flagCfg.ConfigFile)
	}

	cfg, err := config.Load()
	if err != nil {
		if flagCfg.ConfigFile != "" && strings.Contains(err.Error(), "not found") {
			FatalError(2, "Config file not found: %s\n", flagCfg.ConfigFile)
		}
		FatalError(1, "Failed to load config: %v\n", err)
	}
	applyFlagOverrides(cfg, flagCfg)

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}
	defer shutdownLogger()

	logger.Info("msg", "WesCoco starting",
		"version", version.Short(),
		"config_file", flagCfg.ConfigFile,
		"log_output", cfg.Logging.Output)

	// ANSI sequences are emitted unconditionally; just note it when the
	// passthrough stream is not a terminal.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger.Info("msg", "stderr is not a terminal, escape sequences will be written raw",
			"component", "main")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		logger.Error("msg", "Failed to create pipeline", "error", err)
		os.Exit(1)
	}
	if err := p.Start(ctx); err != nil {
		logger.Error("msg", "Failed to start pipeline", "error", err)
		os.Exit(1)
	}

	if interval := statusReportInterval(cfg); interval > 0 {
		go statusReporter(ctx, p, interval)
	}

	// Run until the upstream pipe closes or a termination signal arrives.
	select {
	case <-p.Done():
		logger.Info("msg", "Input stream closed, exiting")
		return
	case sig := <-sigChan:
		logger.Info("msg", "Shutdown signal received, starting graceful shutdown...",
			"signal", sig.String())
	}

	// Shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		p.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("msg", "Shutdown complete")
	case <-shutdownCtx.Done():
		logger.Error("msg", "Shutdown timeout exceeded - forcing exit")
		os.Exit(1)
	}
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Print("Logger shutdown error: %v\n", err)
		}
	}
}

func statusReportInterval(cfg *config.Config) time.Duration {
	if os.Getenv("WESCOCO_DISABLE_STATUS_REPORTER") == "1" {
		return 0
	}
	return time.Duration(cfg.Status.ReportIntervalSeconds) * time.Second
}
