package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scrollcam"
)

// Image wraps an *ebiten.Image as a scrollcam texture and surface.
type Image struct {
	img *ebiten.Image
}

// NewImage wraps img.
func NewImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}

// Ebiten returns the wrapped image.
func (i *Image) Ebiten() *ebiten.Image { return i.img }

// Size returns the image bounds.
func (i *Image) Size() (int, int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the image with c.
func (i *Image) Clear(c scrollcam.Color) {
	i.img.Fill(c.RGBA())
}

// Blit draws tex with its top-left corner at (x, y). Textures from other
// backends are ignored.
func (i *Image) Blit(tex scrollcam.Texture, x, y float64) {
	src := imageOf(tex)
	if src == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	i.img.DrawImage(src, &op)
}

// BlitScaled draws tex scaled uniformly about its top-left corner, then
// placed at (x, y).
func (i *Image) BlitScaled(tex scrollcam.Texture, x, y, scale float64) {
	src := imageOf(tex)
	if src == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	if scale < 1 {
		op.Filter = ebiten.FilterLinear
	}
	i.img.DrawImage(src, &op)
}

func imageOf(tex scrollcam.Texture) *ebiten.Image {
	if im, ok := tex.(*Image); ok && im != nil {
		return im.img
	}
	return nil
}

// Buffers allocates off-screen ebiten images for the zoom buffer.
type Buffers struct{}

// NewBuffer allocates a w×h transparent image.
func (Buffers) NewBuffer(w, h int) scrollcam.Buffer {
	return &Image{img: ebiten.NewImage(w, h)}
}
