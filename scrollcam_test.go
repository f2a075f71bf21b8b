package scrollcam

import (
	"image/color"
	"testing"
)

func TestRectEdgeSetters(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	r.SetRight(100)
	if r.X != 70 || r.Width != 30 {
		t.Errorf("SetRight: %+v", r)
	}
	r.SetBottom(100)
	if r.Y != 60 || r.Height != 40 {
		t.Errorf("SetBottom: %+v", r)
	}
	r.SetLeft(0)
	r.SetTop(0)
	if r != (Rect{0, 0, 30, 40}) {
		t.Errorf("SetLeft/SetTop: %+v", r)
	}
}

func TestRectContainsRect(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	if !box.ContainsRect(Rect{0, 0, 100, 100}) {
		t.Error("rect should contain itself")
	}
	if box.ContainsRect(Rect{90, 10, 20, 20}) {
		t.Error("overhanging rect reported contained")
	}
	if !box.Intersects(Rect{100, 0, 10, 10}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if !box.Contains(100, 100) || box.Contains(101, 50) {
		t.Error("Contains edge handling")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#71ddee")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.RGBA(); got != (color.RGBA{0x71, 0xdd, 0xee, 0xff}) {
		t.Errorf("RGBA = %v", got)
	}

	c, err = ParseHexColor("ff000080")
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(c.A, 128.0/255, 1e-9) || c.R != 1 {
		t.Errorf("color = %+v", c)
	}

	c, err = ParseHexColor("#71DDEE")
	if err != nil || c.RGBA() != (color.RGBA{0x71, 0xdd, 0xee, 0xff}) {
		t.Errorf("upper case = %+v, %v", c, err)
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567", "#12345z", "#ff0000zz"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	if got.A != 128 || got.R != 128 || got.G != 64 || got.B != 0 {
		t.Errorf("RGBA = %v", got)
	}
}
