package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func spaceKey() tea.Msg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestMultiSelectField(t *testing.T) {
	options := []string{"alpha", "beta", "gamma"}

	t.Run("starts empty", func(t *testing.T) {
		f := NewMultiSelectFormField("Pick", options)
		assert.Nil(t, f.Value())
	})

	t.Run("space toggles highlighted option", func(t *testing.T) {
		f := NewMultiSelectFormField("Pick", options)
		f.Focus()

		f.Update(spaceKey())
		assert.Equal(t, []string{"alpha"}, f.Value())

		f.Update(spaceKey())
		assert.Nil(t, f.Value())
	})

	t.Run("toggle callback can veto", func(t *testing.T) {
		f := NewMultiSelectFormField("Pick", options)
		f.Focus()
		f.OnToggle(func(option string, checked bool) bool {
			return false // never allow checking
		})

		f.Update(spaceKey())
		assert.Nil(t, f.Value())
	})

	t.Run("toggle callback sees option and state", func(t *testing.T) {
		f := NewMultiSelectFormField("Pick", options)
		f.Focus()

		var gotOption string
		var gotChecked bool
		f.OnToggle(func(option string, checked bool) bool {
			gotOption = option
			gotChecked = checked
			return checked
		})

		f.Update(spaceKey())
		assert.Equal(t, "alpha", gotOption)
		assert.True(t, gotChecked)
	})

	t.Run("set checked by value", func(t *testing.T) {
		f := NewMultiSelectFormField("Pick", options)
		f.SetChecked("beta", true)
		f.SetChecked("unknown", true)
		assert.Equal(t, []string{"beta"}, f.Value())
	})

	t.Run("ignores input when not focused", func(t *testing.T) {
		f := NewMultiSelectFormField("Pick", options)
		f.Update(spaceKey())
		assert.Nil(t, f.Value())
	})

	t.Run("view renders options and checkboxes", func(t *testing.T) {
		f := NewMultiSelectFormField("Pick", options)
		f.SetChecked("alpha", true)
		view := f.View()
		assert.Contains(t, view, "Pick")
		assert.Contains(t, view, "[x]")
		assert.Contains(t, view, "[ ]")
	})
}

func TestSelectFormField(t *testing.T) {
	options := []string{"one", "two", "three"}

	t.Run("default selection", func(t *testing.T) {
		f := NewSelectFormField("Choose", options, "two")
		assert.Equal(t, "two", f.Value())
	})

	t.Run("no default selects first", func(t *testing.T) {
		f := NewSelectFormField("Choose", options, "")
		assert.Equal(t, "one", f.Value())
	})

	t.Run("empty options", func(t *testing.T) {
		f := NewSelectFormField("Choose", nil, "")
		assert.Equal(t, "", f.Value())
	})

	t.Run("navigation moves selection", func(t *testing.T) {
		f := NewSelectFormField("Choose", options, "")
		f.Focus()
		f.Update(tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, "two", f.Value())
	})
}
