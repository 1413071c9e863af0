package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/okruta/rolo/internal/book"
	"github.com/okruta/rolo/internal/command"
	"github.com/okruta/rolo/internal/config"
	"github.com/okruta/rolo/internal/shell"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"1" help:"Start the interactive contact shell."`
}

// ShellCmd starts the interactive contact shell.
type ShellCmd struct {
	Plain  bool   `help:"Force plain line output even if stdout is a TTY." default:"false"`
	Config string `help:"Extra config file loaded after the defaults." type:"path"`
}

// Run executes the shell command.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig(s.Config)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	// Apply CLI flag overrides.
	if s.Plain {
		cfg.Shell.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := shell.New(shell.Options{
		ForcePlain: cfg.Shell.Plain,
		Prompt:     cfg.Shell.Prompt,
		Scrollback: cfg.Shell.Scrollback,
	})

	return sh.Run(ctx, command.New(book.New()))
}

// loadConfig loads layered config from user and project paths with env
// overrides, plus an optional extra file with the highest priority.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/rolo/config.yaml"),
		".rolo.yaml",
	}
	if extra != "" {
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, config.ErrInvalid) {
		return exitSetup
	}
	return exitRuntime
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
