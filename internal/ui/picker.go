package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerModel is a single-choice list. It quits on enter or cancel.
type pickerModel struct {
	title     string
	items     []string
	selected  int
	chosen    bool
	cancelled bool
	styles    Styles
}

func newPickerModel(title string, items []string, styles Styles) pickerModel {
	return pickerModel{title: title, items: items, styles: styles}
}

// setSelected sets the initially selected index; out of range is ignored.
func (m pickerModel) setSelected(index int) pickerModel {
	if index >= 0 && index < len(m.items) {
		m.selected = index
	}
	return m
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down", "ctrl+n", "tab":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "k", "up", "ctrl+p", "shift+tab":
		if m.selected > 0 {
			m.selected--
		}
	case "home", "g":
		m.selected = 0
	case "end", "G":
		if len(m.items) > 0 {
			m.selected = len(m.items) - 1
		}
	case "enter":
		if len(m.items) > 0 {
			m.chosen = true
			return m, tea.Quit
		}
	case "esc", "ctrl+c", "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.title))
	b.WriteString("\n")
	for i, item := range m.items {
		if i == m.selected {
			b.WriteString(m.styles.Accent.Render("> " + lipgloss.NewStyle().Bold(true).Render(item)))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Dim.Render("↑/↓ move • enter select • esc cancel"))
	b.WriteString("\n")
	return b.String()
}
