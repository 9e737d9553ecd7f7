// Package main runs the interactive explorer console.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"

	app "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/config"
	"github.com/okian/explorer/internal/console"
	"github.com/okian/explorer/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logs go to stderr so result tables stay clean.
	if err := logger.Init(logger.WithOutput(os.Stderr), logger.WithJSON(cfg.LogFormat == "json")); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("warn")
	}
	log := logger.Get()

	opts, err := app.OptionsFromConfig(cfg, log)
	if err != nil {
		return err
	}
	svc := app.New(opts...)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          console.Prompt("", true),
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	registry := console.NewRegistry(svc, console.WithOutput(rl.Stdout()), console.WithLogger(log.Named("console")))

	fmt.Fprintln(rl.Stdout(), "Pokémon and NBA explorer")
	fmt.Fprintf(rl.Stdout(), "PokeAPI: %s  NBA: %s\n", cfg.PokeAPIBaseURL, cfg.NBABaseURL)
	fmt.Fprintf(rl.Stdout(), "Type 'help' for commands\n\n")

	for {
		rl.SetPrompt(console.Prompt(registry.SessionID(), true))

		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		if errors.Is(registry.Execute(ctx, strings.TrimSpace(line)), console.ErrExit) {
			fmt.Fprintln(rl.Stdout(), "Goodbye!")
			return nil
		}
	}
}
