package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/smileynet/rolodex"
	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/shell"
	"github.com/smileynet/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Session SessionCmd       `cmd:"" default:"1" help:"Start an interactive contact book session."`
}

// SessionCmd starts the interactive read-execute-print session.
type SessionCmd struct {
	Window int  `help:"Days ahead to scan for upcoming birthdays (overrides config)." default:"-1"`
	Plain  bool `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// Run executes the session command.
func (s *SessionCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	// Apply CLI flag overrides.
	if s.Window >= 0 {
		cfg.Reminder.Window = s.Window
	}
	if s.Plain {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runSession(ctx, os.Stdin, os.Stdout, cfg)
}

// runSession wires the book, shell, and display together, enabling testable wiring.
// The book lives for exactly one session: constructed here, passed down
// explicitly, discarded on return.
func runSession(ctx context.Context, r io.Reader, w io.Writer, cfg *config.Config) error {
	resources := rolodex.OverlayFS("templates", rolodex.Templates)

	b := book.New()
	opts := []shell.Option{shell.WithWindow(cfg.Reminder.Window)}
	if help, ok := readResource(resources, "help.md"); ok {
		opts = append(opts, shell.WithHelp(help))
	}
	sh := shell.New(b, opts...)

	welcome := "Welcome to rolodex!"
	if banner, ok := readResource(resources, "welcome.md"); ok {
		welcome = banner
	}

	display := tui.NewDisplay(tui.DisplayOptions{
		Input:      r,
		Writer:     w,
		ForcePlain: cfg.UI.Plain,
		Prompt:     cfg.UI.Prompt,
		Welcome:    welcome,
		Execute:    sh.Execute,
	})

	return display.Run(ctx)
}

// readResource loads a template file, reporting whether it was found.
func readResource(resources fs.FS, name string) (string, bool) {
	data, err := fs.ReadFile(resources, name)
	if err != nil {
		return "", false
	}
	return strings.TrimRight(string(data), "\n"), true
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex.yaml",
	)
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
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	// Interrupting the session with Ctrl+C is a normal way to leave.
	if errors.Is(err, context.Canceled) {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	os.Exit(exitCode(err))
}
