// Package render draws sticker nets for the terminal with lipgloss.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/pocketcube"
)

// Palette maps sticker colors to terminal colors.
type Palette map[pocketcube.Color]lipgloss.Color

// DefaultPalette returns the standard scheme.
func DefaultPalette() Palette {
	return Palette{
		pocketcube.ColorU: lipgloss.Color("#ffffff"),
		pocketcube.ColorF: lipgloss.Color("#00a651"),
		pocketcube.ColorR: lipgloss.Color("#d7263d"),
		pocketcube.ColorD: lipgloss.Color("#ffd500"),
		pocketcube.ColorB: lipgloss.Color("#0051ba"),
		pocketcube.ColorL: lipgloss.Color("#ff8c00"),
	}
}

// PaletteFromConfig overlays letter-keyed colors (W G R Y B O) on the default palette.
func PaletteFromConfig(colors map[string]string) (Palette, error) {
	p := DefaultPalette()
	for letter, value := range colors {
		runes := []rune(letter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("invalid sticker letter %q", letter)
		}
		c, err := pocketcube.ParseColor(runes[0])
		if err != nil {
			return nil, err
		}
		p[c] = lipgloss.Color(value)
	}
	return p, nil
}

// Renderer draws sticker grids.
type Renderer struct {
	palette Palette
	blank   string
}

// New creates a renderer using palette.
func New(palette Palette) *Renderer {
	return &Renderer{palette: palette, blank: "   "}
}

func (r *Renderer) sticker(c pocketcube.Color) string {
	style := lipgloss.NewStyle().
		Background(r.palette[c]).
		Foreground(lipgloss.Color("0"))
	return style.Render(" " + c.String() + " ")
}

func (r *Renderer) row(s pocketcube.Stickers, f pocketcube.Face, top int) string {
	return r.sticker(s.Sticker(f, top)) + r.sticker(s.Sticker(f, top+1))
}

// Net renders the unfolded cube: U on top, L F R B across the middle, D below.
func (r *Renderer) Net(s pocketcube.Stickers) string {
	pad := strings.Repeat(r.blank, 2)
	var b strings.Builder

	for _, top := range []int{0, 2} {
		b.WriteString(pad + r.row(s, pocketcube.FaceU, top) + "\n")
	}
	for _, top := range []int{0, 2} {
		for _, f := range []pocketcube.Face{pocketcube.FaceL, pocketcube.FaceF, pocketcube.FaceR, pocketcube.FaceB} {
			b.WriteString(r.row(s, f, top))
		}
		b.WriteString("\n")
	}
	for _, top := range []int{0, 2} {
		b.WriteString(pad + r.row(s, pocketcube.FaceD, top) + "\n")
	}
	return b.String()
}
