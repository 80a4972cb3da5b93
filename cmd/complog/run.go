// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/complog/src/cli"
	"github.com/H0llyW00dzZ/complog/src/logger"
	verpkg "github.com/H0llyW00dzZ/complog/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// One hub for the whole process
	hub := logger.NewHub()
	log := hub.New("complog", logger.WithMaxSeverity(logger.Info))

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling using signal.NotifyContext for cleaner cancellation
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to signal completion
	done := make(chan error, 1)

	// Run the CLI in a separate goroutine
	go func() {
		done <- cli.Execute(ctx, version, hub)
	}()

	// Wait for either completion or context cancellation
	select {
	case err := <-done:
		os.Exit(exitCode(log, err))
	case <-ctx.Done():
		_ = log.Warn("Operation cancelled by signal. Exiting...")
		// Give the CLI a moment to clean up
		select {
		case <-done:
			// CLI finished cleaning up
		case <-time.After(100 * time.Millisecond):
			// Timeout waiting for cleanup
		}
		os.Exit(130) // Standard exit code for SIGINT
	}
}

// exitCode reports err through log and returns the process exit code.
// Escalated errors have already been logged and are not repeated.
func exitCode(log *logger.Logger, err error) int {
	if err == nil {
		return 0
	}
	var esc *logger.EscalatedError
	if !errors.As(err, &esc) {
		_ = log.ErrorPretty(err)
	}
	return 1
}
