package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1;31mred\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "red\nplain", StripANSI(in))
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "abc", KeyRunes("abc").String())
	assert.Equal(t, "enter", Key(tea.KeyEnter).String())
}

func TestTypeString(t *testing.T) {
	var got []string
	TypeString(func(msg tea.Msg) {
		got = append(got, msg.(tea.KeyMsg).String())
	}, "hi")
	assert.Equal(t, []string{"h", "i"}, got)
}
