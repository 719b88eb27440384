package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Display runs an interactive contact book session until the user quits.
type Display interface {
	Run(ctx context.Context) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Input      io.Reader                   // Command source (default: os.Stdin).
	Writer     io.Writer                   // Output destination (default: os.Stdout).
	ForcePlain bool                        // Force plain text even if TTY.
	Prompt     string                      // Prompt shown before each command.
	Welcome    string                      // Banner printed at session start.
	Execute    func(string) (string, bool) // Command executor; reports reply and quit.
}

// NewDisplay returns a TUI session when stdout is a TTY, or a plain
// line-oriented session otherwise. ForcePlain overrides TTY detection.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return &PlainDisplay{opts: opts}
	}

	return &TUIDisplay{opts: opts}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay runs the session as a plain read-execute-print loop.
type PlainDisplay struct {
	opts DisplayOptions
}

// Run reads commands line by line until the executor signals quit or input
// is exhausted. The context is checked between commands; a blocked read is
// not interrupted.
func (d *PlainDisplay) Run(ctx context.Context) error {
	w := d.opts.Writer
	if d.opts.Welcome != "" {
		_, _ = fmt.Fprintln(w, d.opts.Welcome)
	}

	scanner := bufio.NewScanner(d.opts.Input)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprint(w, d.opts.Prompt)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(w)
			return scanner.Err()
		}
		reply, quit := d.opts.Execute(scanner.Text())
		if reply != "" {
			_, _ = fmt.Fprintln(w, reply)
		}
		if quit {
			return nil
		}
	}
}

// TUIDisplay runs the session as a Bubble Tea terminal UI.
// Falls back to PlainDisplay if the TUI program fails to start.
type TUIDisplay struct {
	opts DisplayOptions
}

// Run starts the Bubble Tea program. If the TUI fails to initialize, it
// falls back to the plain display.
func (d *TUIDisplay) Run(ctx context.Context) error {
	model := NewModel(d.opts.Execute,
		WithPrompt(d.opts.Prompt),
		WithWelcome(d.opts.Welcome),
	)
	p := tea.NewProgram(model,
		tea.WithInput(d.opts.Input),
		tea.WithOutput(d.opts.Writer),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		plain := &PlainDisplay{opts: d.opts}
		return plain.Run(ctx)
	}
	return nil
}
