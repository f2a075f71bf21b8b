package scrollcam

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Vec2 { return Vec2{r.X, r.Y} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// SetLeft moves the rectangle so its left edge sits at x. Size is unchanged.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rectangle so its right edge sits at x. Size is unchanged.
func (r *Rect) SetRight(x float64) { r.X = x - r.Width }

// SetTop moves the rectangle so its top edge sits at y. Size is unchanged.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rectangle so its bottom edge sits at y. Size is unchanged.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.Height }

// Translate moves the rectangle by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Borders are the margins between the viewport edges and the camera box.
type Borders struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("scrollcam: color %q: want #rrggbb or #rrggbbaa", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return Color{}, fmt.Errorf("scrollcam: color %q: %w", s, err)
	}
	a := 1.0
	if len(h) == 8 {
		v, _ := strconv.ParseUint(h[6:], 16, 8)
		a = float64(v) / 255
		h = h[:6]
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("scrollcam: color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: a}, nil
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
