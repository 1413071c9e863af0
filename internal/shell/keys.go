package shell

import "github.com/charmbracelet/bubbles/key"

// shellKeys holds key bindings for the interactive shell.
type shellKeys struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings for the help bar.
func (k shellKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k shellKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel, k.Quit},
	}
}

// ShellKeyMap returns the key bindings for the shell.
func ShellKeyMap() shellKeys {
	return shellKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel prompt"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
