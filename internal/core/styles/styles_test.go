package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "tokyo-night"}, ThemeNames())
}

func TestSetTheme(t *testing.T) {
	prev := CurrentPalette
	t.Cleanup(func() { SetTheme(prev) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Success, SuccessStyle.GetForeground())
	assert.NotNil(t, FormTheme())

	_, ok = GetPalette("missing")
	assert.False(t, ok)
}
