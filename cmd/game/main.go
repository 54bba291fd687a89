package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/config"
	"github.com/bomma/arcade/internal/loop/client"
	"golang.org/x/term"
)

func main() {
	// Raw mode owns the terminal, so logs only go to stderr when redirected.
	logger := config.NewStderrLogger("arcade")
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetOutput(io.Discard)
	}

	defaultGame := config.GetEnv("ARCADE_GAME", catalog.Games[0].ID)
	if _, err := catalog.Lookup(defaultGame); err != nil {
		logger.Warn("ignoring ARCADE_GAME", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Logger:      logger,
		Rand:        config.NewRand(),
		DefaultGame: defaultGame,
	})
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
