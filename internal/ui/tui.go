package ui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUIPrompter prompts with bubbletea programs on a terminal.
type TUIPrompter struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// NewTUIPrompter creates a prompter that runs its dialogs on in and out.
func NewTUIPrompter(in io.Reader, out io.Writer) *TUIPrompter {
	return &TUIPrompter{in: in, out: out, styles: StylesFor(out)}
}

// Select runs the picker and returns the chosen index.
func (p *TUIPrompter) Select(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("nothing to select")
	}

	final, err := p.run(newPickerModel(title, items, p.styles))
	if err != nil {
		return 0, err
	}
	m := final.(pickerModel)
	if !m.chosen {
		return 0, ErrCancelled
	}
	return m.selected, nil
}

// Confirm asks a yes/no question.
func (p *TUIPrompter) Confirm(prompt string, def bool) (bool, error) {
	final, err := p.run(newConfirmModel(prompt, def, p.styles))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.answer, nil
}

// Input asks for a line of text.
func (p *TUIPrompter) Input(prompt, def string) (string, error) {
	final, err := p.run(newInputModel(prompt, def, p.styles))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value(), nil
}

func (p *TUIPrompter) run(model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}
