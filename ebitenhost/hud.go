package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/phanxgames/scrollcam"
)

const hudFontSize = 14

var (
	hudBackground = color.RGBA{0, 0, 0, 128}
	boxColor      = color.RGBA{0xff, 0xeb, 0x3b, 0xff}
	marginColor   = color.RGBA{0xff, 0x57, 0x22, 0xff}
)

// hud draws the status overlay and, in debug mode, the camera box and the
// edge-pan margins.
type hud struct {
	face    *text.GoTextFace
	lh      float64
	showFPS bool
}

func newHUD(showFPS bool) (*hud, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: load hud font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: hudFontSize}
	m := face.Metrics()
	return &hud{face: face, lh: m.HAscent + m.HDescent + m.HLineGap, showFPS: showFPS}, nil
}

// hudLines returns the status text for the scene's current state.
func hudLines(s *scrollcam.Scene, fps float64, showFPS bool) []string {
	cam := s.Camera()
	lines := []string{
		fmt.Sprintf("mode %s  zoom %.2f", cam.Mode, cam.Zoom),
		fmt.Sprintf("offset %.0f,%.0f", cam.Offset.X, cam.Offset.Y),
	}
	if p := s.Player(); p != nil {
		lines = append(lines, fmt.Sprintf("player %.0f,%.0f", p.Pos.X, p.Pos.Y))
	}
	if showFPS {
		lines = append(lines, fmt.Sprintf("fps %.1f", fps))
	}
	return lines
}

func (h *hud) draw(dst *ebiten.Image, s *scrollcam.Scene) {
	if s.DebugMode() {
		drawGuides(dst, s)
	}

	lines := hudLines(s, ebiten.ActualFPS(), h.showFPS)
	vector.DrawFilledRect(dst, 4, 4, 220, float32(h.lh*float64(len(lines))+8), hudBackground, false)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 8+h.lh*float64(i))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(dst, line, h.face, op)
	}
}

// drawGuides outlines the camera box as it appears on screen and the
// edge-pan margins of the viewport.
func drawGuides(dst *ebiten.Image, s *scrollcam.Scene) {
	cam := s.Camera()
	if cam.Mode == scrollcam.PanMouse {
		b := cam.Borders
		vector.StrokeRect(dst, float32(b.Left), float32(b.Top),
			float32(cam.ViewW-b.Left-b.Right), float32(cam.ViewH-b.Top-b.Bottom), 1, marginColor, false)
		return
	}
	box := cam.BoxOnScreen()
	vector.StrokeRect(dst, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), 2, boxColor, false)
}
