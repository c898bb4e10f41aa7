package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop"
)

func main() {
	// The game owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("INVADERS_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal("failed to open log file", "path", path, "err", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "game"})

	opts, err := loop.OptionsFromEnv(logger)
	if err != nil {
		log.Fatal("failed to load configuration", "err", err)
	}

	if err := run(opts); err != nil {
		logger.Error("game error", "err", err)
		log.Error("game error", "err", err)
		os.Exit(1)
	}
}

// Swapped in tests.
var (
	makeRaw = term.MakeRaw
	restore = term.Restore
)

// run plays on the controlling terminal.
func run(opts loop.Options) error {
	return withRawMode(int(os.Stdin.Fd()), func() error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
		defer stop()

		return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, opts)
	})
}

// withRawMode runs fn with fd in raw mode. The previous mode is restored on
// every return path, panics included.
func withRawMode(fd int, fn func() error) error {
	oldState, err := makeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = restore(fd, oldState)
	}()

	return fn()
}
