package tui

import "github.com/charmbracelet/bubbles/key"

// sessionKeys holds key bindings for the interactive session.
type sessionKeys struct {
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns the session bindings for the help bar.
func (k sessionKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// FullHelp returns the session bindings grouped for expanded help.
func (k sessionKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Quit}}
}

// SessionKeyMap returns the key bindings for the interactive session.
func SessionKeyMap() sessionKeys {
	return sessionKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
