package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel reads a single line of text with an optional default.
type inputModel struct {
	prompt    string
	def       string
	input     textinput.Model
	done      bool
	cancelled bool
	styles    Styles
}

func newInputModel(prompt, def string, styles Styles) inputModel {
	ti := textinput.New()
	ti.Placeholder = def
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	return inputModel{prompt: prompt, def: def, input: ti, styles: styles}
}

// value returns the typed text, or the default when nothing was typed.
func (m inputModel) value() string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m.def
	}
	return v
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.styles.Header.Render(m.prompt) + "\n" + m.input.View() + "\n" +
		m.styles.Dim.Render("enter accept • esc cancel") + "\n"
}

// confirmModel is a yes/no question answered with y, n or enter.
type confirmModel struct {
	prompt    string
	answer    bool
	done      bool
	cancelled bool
	styles    Styles
}

func newConfirmModel(prompt string, def bool, styles Styles) confirmModel {
	return confirmModel{prompt: prompt, answer: def, styles: styles}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.answer = false
		m.done = true
		return m, tea.Quit
	case "left", "right", "h", "l", "tab":
		m.answer = !m.answer
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c", "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	yes, no := "  Yes  ", "  No  "
	if m.answer {
		yes = m.styles.Accent.Render("[ Yes ]")
	} else {
		no = m.styles.Accent.Render("[ No ]")
	}
	return m.styles.Header.Render(m.prompt) + "\n" + yes + " " + no + "\n"
}
