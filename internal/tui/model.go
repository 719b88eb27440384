// Package tui renders the interactive contact book session, either as a
// Bubble Tea terminal UI or as a plain read-execute-print loop.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// exchange is one executed command and its reply.
type exchange struct {
	input string
	reply string
}

// Model is the Bubble Tea model for the interactive session: a transcript of
// past exchanges above a focused text input.
type Model struct {
	input      textinput.Model
	transcript []exchange
	execute    func(string) (string, bool)
	welcome    string
	keys       sessionKeys
	help       help.Model
	width      int
	height     int
	done       bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPrompt sets the input prompt.
func WithPrompt(prompt string) ModelOption {
	return func(m *Model) { m.input.Prompt = prompt }
}

// WithWelcome sets the banner shown above the transcript.
func WithWelcome(welcome string) ModelOption {
	return func(m *Model) { m.welcome = welcome }
}

// NewModel creates a session Model with a focused input.
func NewModel(execute func(string) (string, bool), opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		input:   ti,
		execute: execute,
		keys:    SessionKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - len(m.input.Prompt) - 1; w > 0 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and appends the exchange.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	reply, quit := m.execute(line)
	m.transcript = append(m.transcript, exchange{input: line, reply: reply})
	if quit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the welcome banner, transcript, input line, and help bar.
func (m Model) View() string {
	var b strings.Builder

	if m.welcome != "" {
		b.WriteString(WelcomeStyle().Render(m.welcome))
		b.WriteString("\n")
	}

	for _, ex := range m.visibleTranscript() {
		b.WriteString(FaintStyle().Render(m.input.Prompt + ex.input))
		b.WriteString("\n")
		if ex.reply != "" {
			b.WriteString(renderReply(ex.reply))
			b.WriteString("\n")
		}
	}

	if !m.done {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

// visibleTranscript trims the transcript to what fits above the input and
// help bar. Each exchange takes at most two lines plus reply line breaks.
func (m Model) visibleTranscript() []exchange {
	if m.height == 0 {
		return m.transcript
	}

	budget := m.height - helpBarHeight - 2 // input line + welcome banner
	if budget < 1 {
		budget = 1
	}

	lines := 0
	start := len(m.transcript)
	for start > 0 {
		ex := m.transcript[start-1]
		cost := 1 + strings.Count(ex.reply, "\n")
		if ex.reply != "" {
			cost++
		}
		if lines+cost > budget {
			break
		}
		lines += cost
		start--
	}
	return m.transcript[start:]
}

// renderReply styles a reply line, highlighting errors.
func renderReply(reply string) string {
	if strings.HasPrefix(reply, "Error: ") {
		return ErrorStyle().Render(reply)
	}
	return reply
}
