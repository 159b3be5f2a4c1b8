package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPalette(t *testing.T) {
	for _, name := range ThemeNames() {
		p, ok := GetPalette(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, p.Primary)
		assert.NotEmpty(t, p.Error)
	}

	_, ok := GetPalette("no-such-theme")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	t.Cleanup(func() {
		def, _ := GetPalette(DefaultTheme)
		SetTheme(def)
	})

	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p.Primary, CurrentPalette.Primary)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, string(ColorForeground), *cfg.Document.Color)
	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, string(ColorPrimary), *cfg.H2.Color)
}
