package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/scrollcam"
)

// Placeholder sprite sizes.
const (
	GroundSize = 3000
	gridStep   = 100
	TreeW      = 120
	TreeH      = 180
	PlayerW    = 40
	PlayerH    = 60
	RockW      = 50
	RockH      = 34
)

var (
	grassColor  = color.RGBA{0x5b, 0xa8, 0x4c, 0xff}
	gridColor   = color.RGBA{0x4c, 0x92, 0x3f, 0xff}
	trunkColor  = color.RGBA{0x7a, 0x4e, 0x2d, 0xff}
	leafColor   = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	leafHiColor = color.RGBA{0x43, 0xa0, 0x47, 0xff}
	bodyColor   = color.RGBA{0xd8, 0x43, 0x15, 0xff}
	headColor   = color.RGBA{0xff, 0xcc, 0x80, 0xff}
	rockColor   = color.RGBA{0x8d, 0x8d, 0x8d, 0xff}
	rockHiColor = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
)

// NewSprites draws the forest's placeholder textures: a gridded ground, a
// tree, and the player.
func NewSprites() scrollcam.Sprites {
	return scrollcam.Sprites{
		Ground: NewImage(groundImage()),
		Tree:   NewImage(treeImage()),
		Player: NewImage(playerImage()),
	}
}

func groundImage() *ebiten.Image {
	img := ebiten.NewImage(GroundSize, GroundSize)
	img.Fill(grassColor)
	for p := float32(0); p <= GroundSize; p += gridStep {
		vector.StrokeLine(img, p, 0, p, GroundSize, 2, gridColor, false)
		vector.StrokeLine(img, 0, p, GroundSize, p, 2, gridColor, false)
	}
	return img
}

func treeImage() *ebiten.Image {
	img := ebiten.NewImage(TreeW, TreeH)
	vector.DrawFilledRect(img, TreeW/2-10, TreeH/2, 20, TreeH/2, trunkColor, false)
	vector.DrawFilledCircle(img, TreeW/2, TreeH/2-10, TreeW/2, leafColor, true)
	vector.DrawFilledCircle(img, TreeW/2-15, TreeH/2-30, TreeW/4, leafHiColor, true)
	return img
}

func playerImage() *ebiten.Image {
	img := ebiten.NewImage(PlayerW, PlayerH)
	vector.DrawFilledRect(img, 4, 20, PlayerW-8, PlayerH-20, bodyColor, false)
	vector.DrawFilledCircle(img, PlayerW/2, 12, 11, headColor, true)
	return img
}

// NewRock draws a rock prop texture.
func NewRock() scrollcam.Texture {
	img := ebiten.NewImage(RockW, RockH)
	vector.DrawFilledCircle(img, RockW/2, RockH/2+2, RockH/2-1, rockColor, true)
	vector.DrawFilledCircle(img, RockW/2-8, RockH/2-4, RockH/4, rockHiColor, true)
	return NewImage(img)
}
