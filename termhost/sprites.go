package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrollcam"
)

// NewSprites returns glyph textures for the forest scene, sized like the
// windowed placeholders so world coordinates match.
func NewSprites() scrollcam.Sprites {
	return scrollcam.Sprites{
		Ground: &Glyph{
			W: 3000, H: 3000,
			Fill: true, FillRune: '·',
			Fg: tcell.NewRGBColor(0x4c, 0x92, 0x3f),
			Bg: tcell.NewRGBColor(0x5b, 0xa8, 0x4c),
		},
		Tree:   &Glyph{W: 120, H: 180, Rune: '🌲', Fg: tcell.ColorGreen},
		Player: &Glyph{W: 40, H: 60, Rune: '@', Fg: tcell.ColorRed},
	}
}

// NewRock returns a rock prop glyph, the same size as the windowed one.
func NewRock() scrollcam.Texture {
	return &Glyph{W: 50, H: 34, Rune: 'o', Fg: tcell.ColorGray}
}
