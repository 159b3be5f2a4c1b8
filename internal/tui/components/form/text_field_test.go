package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "")
		assert.Equal(t, "Name", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "hello")
		assert.Equal(t, "hello", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		assert.False(t, f.Focused())

		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		field, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("set value", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.SetValue("typed text")
		assert.Equal(t, "typed text", f.Value())
	})

	t.Run("view renders label", func(t *testing.T) {
		f := NewTextField("Name", "placeholder", "")
		assert.Contains(t, f.View(), "Name")
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		unfocused := f.View()

		f.Focus()
		focused := f.View()

		assert.NotEqual(t, unfocused, focused)
	})
}

func TestTextAreaField(t *testing.T) {
	t.Run("creation", func(t *testing.T) {
		f := NewTextAreaField("Context", "describe it", "seed")
		assert.Equal(t, "Context", f.Label())
		assert.Equal(t, "seed", f.Value())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextAreaField("Context", "", "")
		_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
		assert.Nil(t, cmd)
		assert.Empty(t, f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextAreaField("Context", "", "")
		f.Focus()
		assert.True(t, f.Focused())
		f.Blur()
		assert.False(t, f.Focused())
	})
}
