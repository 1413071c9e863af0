package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okruta/rolo/internal/command"
)

// inputMode tracks what the text input currently collects.
type inputMode int

const (
	modeCommand   inputMode = iota // Input is a command token.
	modeBusy                       // A command is running; typing is ignored.
	modePrompting                  // Input answers a running command's prompt.
)

// Model is the Bubble Tea model for the interactive contact shell.
type Model struct {
	dispatcher *command.Dispatcher
	bridge     *Bridge

	input      textinput.Model
	help       help.Model
	keys       shellKeys
	history    []string
	mode       inputMode
	prompt     string
	scrollback int
	width      int
	quitting   bool
}

// ModelOption configures a Model at creation.
type ModelOption func(*Model)

// WithPrompt sets the command prompt text.
func WithPrompt(prompt string) ModelOption {
	return func(m *Model) {
		if prompt != "" {
			m.prompt = prompt
		}
	}
}

// WithScrollback sets how many history lines the model retains.
func WithScrollback(n int) ModelOption {
	return func(m *Model) {
		if n > 0 {
			m.scrollback = n
		}
	}
}

// NewModel creates a Model wired to a dispatcher and its bridge.
func NewModel(d *command.Dispatcher, b *Bridge, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Focus()

	m := Model{
		dispatcher: d,
		bridge:     b,
		input:      ti,
		help:       help.New(),
		keys:       ShellKeyMap(),
		mode:       modeCommand,
		prompt:     "> ",
		scrollback: 500,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.input.Prompt = m.prompt

	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// listen waits for the next event from the dispatch goroutine.
// Exactly one listen command is outstanding while a command runs: one is
// issued when the dispatch starts and one after each PromptMsg, since an
// answered prompt is always followed by another event.
func (m Model) listen() tea.Cmd {
	events := m.bridge.Events()
	return func() tea.Msg {
		return <-events
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case PromptMsg:
		m.mode = modePrompting
		m.input.Prompt = msg.Text
		m.input.SetValue("")
		return m, m.listen()

	case ResultMsg:
		text := renderResult(msg.Result.Text, msg.Result.Failed, msg.Result.Invalid)
		for _, line := range strings.Split(text, "\n") {
			m.pushHistory(line)
		}
		if msg.Result.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.mode = modeCommand
		m.input.Prompt = m.prompt
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			if m.mode == modePrompting {
				m.input.SetValue("")
				m.input.Prompt = m.prompt
				m.mode = modeBusy
				m.bridge.Cancel()
			}
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			switch m.mode {
			case modeCommand:
				token := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if token == "" {
					return m, nil
				}
				m.pushHistory(m.prompt + token)
				m.mode = modeBusy
				d, b := m.dispatcher, m.bridge
				go func() {
					b.Deliver(d.Dispatch(token, b))
				}()
				return m, m.listen()

			case modePrompting:
				line := strings.TrimSpace(m.input.Value())
				m.pushHistory(m.input.Prompt + line)
				m.input.SetValue("")
				m.input.Prompt = m.prompt
				m.mode = modeBusy
				m.bridge.Answer(line)
			}
			return m, nil
		}

		if m.mode == modeBusy {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the session history above the input line and help bar.
func (m Model) View() string {
	var b strings.Builder

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	if m.mode == modeBusy {
		b.WriteString(dimLine.Render("working"))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// pushHistory appends a line, trimming to the scrollback limit.
func (m *Model) pushHistory(line string) {
	m.history = append(m.history, line)
	if m.scrollback > 0 && len(m.history) > m.scrollback {
		m.history = m.history[len(m.history)-m.scrollback:]
	}
}
