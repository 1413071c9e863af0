// Package shell provides the interactive front ends for the contact book:
// a Bubble Tea TUI when stdout is a terminal, and a plain line-oriented
// REPL otherwise.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/okruta/rolo/internal/command"
)

// Shell drives an interactive command session against a dispatcher.
type Shell interface {
	Run(ctx context.Context, d *command.Dispatcher) error
}

// Options configures shell creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain line mode even if TTY.
	Prompt     string    // Command prompt text.
	Scrollback int       // TUI history lines kept in memory.
}

// New returns a TUI shell when output is a TTY, or a plain line shell
// otherwise. ForcePlain overrides TTY detection.
func New(opts Options) Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}

	if opts.ForcePlain || !isTTY(opts.Out) {
		return &PlainShell{in: opts.In, out: opts.Out, prompt: opts.Prompt}
	}

	return &TUIShell{
		in:         opts.In,
		out:        opts.Out,
		prompt:     opts.Prompt,
		scrollback: opts.Scrollback,
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainShell reads commands line by line and prints results as plain text.
// Suitable for pipes and scripted sessions.
type PlainShell struct {
	in     io.Reader
	out    io.Writer
	prompt string
}

// Run loops reading command tokens until exit, EOF, or a read error.
// Blank lines are skipped. EOF ends the session without error.
func (s *PlainShell) Run(ctx context.Context, d *command.Dispatcher) error {
	scanner := bufio.NewScanner(s.in)
	p := &linePrompter{scanner: scanner, out: s.out}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("shell: reading input: %w", err)
			}
			return nil
		}

		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}

		res := d.Dispatch(token, p)
		_, _ = fmt.Fprintln(s.out, res.Text)
		if res.Quit {
			return nil
		}
	}
}

// linePrompter answers dispatcher prompts from the same input stream the
// shell reads commands from.
type linePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *linePrompter) PromptLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// TUIShell runs the interactive session as a Bubble Tea program.
// Falls back to PlainShell if the TUI program fails to start.
type TUIShell struct {
	in         io.Reader
	out        io.Writer
	prompt     string
	scrollback int
}

// Run starts the Bubble Tea program. Commands execute on a separate
// goroutine and talk to the model through a Bridge, so prompts stay
// synchronous from the dispatcher's point of view.
func (s *TUIShell) Run(ctx context.Context, d *command.Dispatcher) error {
	bridge := NewBridge()
	model := NewModel(d, bridge, WithPrompt(s.prompt), WithScrollback(s.scrollback))

	p := tea.NewProgram(model,
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		// Fall back to plain line mode when the terminal cannot host the TUI.
		plain := &PlainShell{in: s.in, out: s.out, prompt: s.prompt}
		return plain.Run(ctx, d)
	}

	return nil
}
