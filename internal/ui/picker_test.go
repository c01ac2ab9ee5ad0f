package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func updatePicker(t *testing.T, m pickerModel, msg tea.Msg) (pickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(pickerModel)
	require.True(t, ok)
	return pm, cmd
}

func TestPicker_Navigate(t *testing.T) {
	m := newPickerModel("Select", []string{"a", "b", "c"}, NoColorStyles())

	m, _ = updatePicker(t, m, runes("j"))
	assert.Equal(t, 1, m.selected)

	m, _ = updatePicker(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.selected)

	m, _ = updatePicker(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.selected, "stays at bottom")

	m, _ = updatePicker(t, m, runes("k"))
	assert.Equal(t, 1, m.selected)

	m, _ = updatePicker(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = updatePicker(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selected, "stays at top")

	m, _ = updatePicker(t, m, runes("G"))
	assert.Equal(t, 2, m.selected)

	m, _ = updatePicker(t, m, runes("g"))
	assert.Equal(t, 0, m.selected)
}

func TestPicker_Enter(t *testing.T) {
	m := newPickerModel("Select", []string{"a", "b"}, NoColorStyles()).setSelected(1)

	m, cmd := updatePicker(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.chosen)
	assert.False(t, m.cancelled)
	assert.Equal(t, 1, m.selected)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPicker_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}, runes("q")} {
		m := newPickerModel("Select", []string{"a"}, NoColorStyles())
		m, cmd := updatePicker(t, m, msg)
		assert.True(t, m.cancelled, "key %s", msg)
		assert.False(t, m.chosen)
		require.NotNil(t, cmd)
	}
}

func TestPicker_SetSelected_OutOfRange(t *testing.T) {
	m := newPickerModel("Select", []string{"a", "b"}, NoColorStyles())
	m = m.setSelected(5)
	assert.Equal(t, 0, m.selected)
	m = m.setSelected(-1)
	assert.Equal(t, 0, m.selected)
}

func TestPicker_View(t *testing.T) {
	m := newPickerModel("Select template", []string{"alpha", "beta"}, NoColorStyles())
	view := m.View()
	assert.Contains(t, view, "Select template")
	assert.Contains(t, view, "> alpha")
	assert.Contains(t, view, "  beta")

	m, _ = updatePicker(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.View(), "view clears after selection")
}

func TestConfirm_Keys(t *testing.T) {
	m := newConfirmModel("Overwrite?", false, NoColorStyles())
	next, _ := m.Update(runes("y"))
	cm := next.(confirmModel)
	assert.True(t, cm.done)
	assert.True(t, cm.answer)

	m = newConfirmModel("Overwrite?", true, NoColorStyles())
	next, _ = m.Update(runes("n"))
	cm = next.(confirmModel)
	assert.False(t, cm.answer)

	m = newConfirmModel("Overwrite?", false, NoColorStyles())
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cm = next.(confirmModel)
	assert.True(t, cm.done)
	assert.False(t, cm.answer, "enter keeps default")

	m = newConfirmModel("Overwrite?", false, NoColorStyles())
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	cm = next.(confirmModel)
	assert.True(t, cm.answer, "tab toggles")
	assert.False(t, cm.done)

	next, _ = cm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	cm = next.(confirmModel)
	assert.True(t, cm.cancelled)
}

func TestInput_DefaultAndTyped(t *testing.T) {
	m := newInputModel("Template path", "/default", NoColorStyles())
	assert.Equal(t, "/default", m.value())

	var next tea.Model = m
	for _, r := range "/tmp/x" {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	im := next.(inputModel)
	assert.True(t, im.done)
	assert.Equal(t, "/tmp/x", im.value())
}

func TestInput_Cancel(t *testing.T) {
	m := newInputModel("Template path", "", NoColorStyles())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(inputModel).cancelled)
}
