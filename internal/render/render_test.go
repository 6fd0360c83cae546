package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube"
)

func TestNetLayout(t *testing.T) {
	c, err := pocketcube.NewCubeFromAlg("R U")
	require.NoError(t, err)

	out := New(DefaultPalette()).Net(c.Stickers())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)

	// Each sticker cell carries its letter; count them regardless of styling.
	letters := 0
	for _, r := range out {
		if strings.ContainsRune("WGRYBO", r) {
			letters++
		}
	}
	assert.Equal(t, 24, letters)
	assert.Contains(t, lines[0], "W")
}

func TestPaletteFromConfig(t *testing.T) {
	p, err := PaletteFromConfig(map[string]string{"W": "15", "o": "208"})
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("15"), p[pocketcube.ColorU])
	assert.Equal(t, lipgloss.Color("208"), p[pocketcube.ColorL])
	assert.Equal(t, DefaultPalette()[pocketcube.ColorF], p[pocketcube.ColorF])

	_, err = PaletteFromConfig(map[string]string{"P": "1"})
	assert.ErrorIs(t, err, pocketcube.ErrUnknownColor)

	_, err = PaletteFromConfig(map[string]string{"WG": "1"})
	assert.Error(t, err)
}
