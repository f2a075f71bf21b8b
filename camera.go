package scrollcam

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PanMode selects how the camera offset follows the scene. Exactly one mode
// is active at a time.
type PanMode uint8

const (
	PanMouse       PanMode = iota // edge panning with pointer clamping (default)
	PanCenter                     // offset keeps the target centered
	PanBox                        // target pushes a dead-zone box around
	PanKeyboard                   // pan keys translate the box
	PanBoxKeyboard                // box follow, then keyboard nudges the box

	panModeCount
)

var panModeNames = [panModeCount]string{
	PanMouse:       "mouse",
	PanCenter:      "center",
	PanBox:         "box",
	PanKeyboard:    "keyboard",
	PanBoxKeyboard: "box+keyboard",
}

func (m PanMode) String() string {
	if m < panModeCount {
		return panModeNames[m]
	}
	return fmt.Sprintf("PanMode(%d)", uint8(m))
}

// ParsePanMode returns the mode with the given name, as produced by String.
func ParsePanMode(name string) (PanMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m := PanMode(0); m < panModeCount; m++ {
		if panModeNames[m] == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("scrollcam: unknown pan mode %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m PanMode) MarshalText() ([]byte, error) {
	if m >= panModeCount {
		return nil, fmt.Errorf("scrollcam: invalid pan mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PanMode) UnmarshalText(b []byte) error {
	v, err := ParsePanMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// usesBox reports whether the offset is derived from the camera box.
func (m PanMode) usesBox() bool {
	return m == PanBox || m == PanKeyboard || m == PanBoxKeyboard
}

// scrollAnim holds active scroll-to tweens for the offset X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera computes the world-to-screen offset for a fixed-size viewport.
//
// Screen position of a world point p is (p - Offset) at zoom 1. Zoom scales
// the composed frame about the viewport center.
type Camera struct {
	// Offset is subtracted from every world position before blitting.
	Offset Vec2
	// Zoom is the uniform scale applied to the composed frame. Never negative.
	Zoom float64
	// Mode is the active panning mode.
	Mode PanMode

	// Box is the dead-zone rectangle in world space used by box and keyboard
	// panning. Its size is always the viewport minus Borders.
	Box Rect
	// Borders are the margins between the viewport edges and Box. They also
	// position the edge-pan margins.
	Borders Borders

	// ViewW and ViewH are the viewport size in pixels.
	ViewW, ViewH float64

	KeyboardSpeed float64
	MouseSpeed    float64
	ZoomStep      float64
	WheelZoomStep float64

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a camera for cfg's viewport with zoom 1 and the initial
// box placed inside the borders.
func NewCamera(cfg Config) *Camera {
	c := &Camera{Zoom: 1}
	c.Configure(cfg)
	c.Box = c.initialBox()
	return c
}

// Configure applies speeds, borders, viewport, and mode from cfg. The box is
// resized to match the new borders while keeping its top-left anchored to
// the current offset.
func (c *Camera) Configure(cfg Config) {
	c.ViewW = float64(cfg.ViewportWidth)
	c.ViewH = float64(cfg.ViewportHeight)
	c.Borders = cfg.Borders
	c.KeyboardSpeed = cfg.KeyboardSpeed
	c.MouseSpeed = cfg.MouseSpeed
	c.ZoomStep = cfg.ZoomStep
	c.WheelZoomStep = cfg.WheelZoomStep
	c.Box.Width = c.ViewW - c.Borders.Left - c.Borders.Right
	c.Box.Height = c.ViewH - c.Borders.Top - c.Borders.Bottom
	if c.Mode.usesBox() {
		c.syncBoxToOffset()
	}
	c.SetMode(cfg.Mode)
}

func (c *Camera) initialBox() Rect {
	return Rect{
		X:      c.Borders.Left,
		Y:      c.Borders.Top,
		Width:  c.ViewW - c.Borders.Left - c.Borders.Right,
		Height: c.ViewH - c.Borders.Top - c.Borders.Bottom,
	}
}

// Reset restores the initial box, a zero offset, and zoom 1, and cancels
// running tweens.
func (c *Camera) Reset() {
	c.Box = c.initialBox()
	c.Offset = Vec2{}
	c.Zoom = 1
	c.scrollTween = nil
	c.zoomTween = nil
}

// HalfViewport returns half the viewport size.
func (c *Camera) HalfViewport() Vec2 {
	return Vec2{c.ViewW / 2, c.ViewH / 2}
}

// SetMode switches the panning mode. Entering a box mode moves the box to
// match the current offset so the view does not jump.
func (c *Camera) SetMode(m PanMode) {
	if m >= panModeCount {
		m = PanMouse
	}
	if m.usesBox() && !c.Mode.usesBox() {
		c.syncBoxToOffset()
	}
	c.Mode = m
}

// CycleMode advances to the next panning mode and returns it.
func (c *Camera) CycleMode() PanMode {
	c.SetMode((c.Mode + 1) % panModeCount)
	return c.Mode
}

// --- Panning ---

// CenterOn sets the offset so target's center maps to the viewport center.
func (c *Camera) CenterOn(target Rect) {
	c.Offset = target.Center().Sub(c.HalfViewport())
}

// BoxFollow moves the box just enough to contain target, snapping each
// crossed edge onto the target's matching edge, then derives the offset from
// the box. The box never changes size.
func (c *Camera) BoxFollow(target Rect) {
	if target.Left() < c.Box.Left() {
		c.Box.SetLeft(target.Left())
	}
	if target.Right() > c.Box.Right() {
		c.Box.SetRight(target.Right())
	}
	if target.Top() < c.Box.Top() {
		c.Box.SetTop(target.Top())
	}
	if target.Bottom() > c.Box.Bottom() {
		c.Box.SetBottom(target.Bottom())
	}
	c.syncOffsetToBox()
}

// KeyboardPan translates the box by KeyboardSpeed along each held pan
// direction and derives the offset from the box.
func (c *Camera) KeyboardPan(in FrameInput) {
	c.Box.Translate(in.Pan.X*c.KeyboardSpeed, in.Pan.Y*c.KeyboardSpeed)
	c.syncOffsetToBox()
}

// EdgePan scrolls when the pointer crosses a pan margin and teleports the
// pointer back onto that margin, so a held gesture keeps scrolling. Inside a
// margin corridor only the crossed axis pans; in a corner region the pan is
// the vector from the corner point to the pointer. The returned delta is
// the unscaled pan distance; the offset moves by delta * MouseSpeed.
//
// Calling EdgePan again with an already clamped pointer yields a zero delta
// and leaves the pointer untouched.
func (c *Camera) EdgePan(p Pointer) Vec2 {
	m := p.CursorPosition()
	l := c.Borders.Left
	t := c.Borders.Top
	r := c.ViewW - c.Borders.Right
	b := c.ViewH - c.Borders.Bottom

	var delta Vec2
	clamped := m

	// Left and right edges need the pointer between top and bottom.
	if t < m.Y && m.Y < b {
		if m.X < l {
			delta.X = m.X - l
			clamped = Vec2{l, m.Y}
		}
		if m.X > r {
			delta.X = m.X - r
			clamped = Vec2{r, m.Y}
		}
	} else if m.Y <= t {
		if m.X <= l {
			delta = m.Sub(Vec2{l, t})
			clamped = Vec2{l, t}
		}
		if m.X >= r {
			delta = m.Sub(Vec2{r, t})
			clamped = Vec2{r, t}
		}
	}

	// Top and bottom edges need the pointer between left and right.
	if l < m.X && m.X < r {
		if m.Y < t {
			delta.Y = m.Y - t
			clamped = Vec2{m.X, t}
		}
		if m.Y > b {
			delta.Y = m.Y - b
			clamped = Vec2{m.X, b}
		}
	} else if m.Y >= b {
		if m.X <= l {
			delta = m.Sub(Vec2{l, b})
			clamped = Vec2{l, b}
		}
		if m.X >= r {
			delta = m.Sub(Vec2{r, b})
			clamped = Vec2{r, b}
		}
	}

	if clamped != m {
		p.SetCursorPosition(clamped)
	}
	c.Offset = c.Offset.Add(delta.Scale(c.MouseSpeed))
	return delta
}

func (c *Camera) syncOffsetToBox() {
	c.Offset = Vec2{c.Box.Left() - c.Borders.Left, c.Box.Top() - c.Borders.Top}
}

func (c *Camera) syncBoxToOffset() {
	c.Box.X = c.Offset.X + c.Borders.Left
	c.Box.Y = c.Offset.Y + c.Borders.Top
}

// --- Zoom ---

// SetZoom sets the zoom, saturating at 0. There is no upper limit.
func (c *Camera) SetZoom(z float64) {
	if z < 0 {
		z = 0
	}
	c.Zoom = z
}

// ZoomKeys steps the zoom by ZoomStep for each held zoom key. Manual zoom
// cancels a running ZoomTo.
func (c *Camera) ZoomKeys(in FrameInput) {
	if !in.ZoomIn && !in.ZoomOut {
		return
	}
	c.zoomTween = nil
	z := c.Zoom
	if in.ZoomIn {
		z += c.ZoomStep
	}
	if in.ZoomOut {
		z -= c.ZoomStep
	}
	c.SetZoom(z)
}

// ZoomWheel adjusts the zoom by WheelZoomStep per unit of scroll.
func (c *Camera) ZoomWheel(dy float64) {
	if dy == 0 {
		return
	}
	c.zoomTween = nil
	c.SetZoom(c.Zoom + dy*c.WheelZoomStep)
}

// --- Tweens ---

// ScrollTo animates the offset so that center ends up in the middle of the
// viewport after duration seconds. Mode panning is suspended while the
// scroll runs.
func (c *Camera) ScrollTo(center Vec2, duration float32, easeFn ease.TweenFunc) {
	dst := center.Sub(c.HalfViewport())
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Offset.X), float32(dst.X), duration, easeFn),
		tweenY: gween.New(float32(c.Offset.Y), float32(dst.Y), duration, easeFn),
	}
}

// ZoomTo animates the zoom to z over duration seconds.
func (c *Camera) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	if z < 0 {
		z = 0
	}
	c.zoomTween = gween.New(float32(c.Zoom), float32(z), duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

func (c *Camera) advanceTweens(dt float32) {
	if c.scrollTween != nil {
		st := c.scrollTween
		if !st.doneX {
			v, done := st.tweenX.Update(dt)
			c.Offset.X = float64(v)
			st.doneX = done
		}
		if !st.doneY {
			v, done := st.tweenY.Update(dt)
			c.Offset.Y = float64(v)
			st.doneY = done
		}
		if c.Mode.usesBox() {
			c.syncBoxToOffset()
		}
		if st.doneX && st.doneY {
			c.scrollTween = nil
		}
	}
	if c.zoomTween != nil {
		v, done := c.zoomTween.Update(dt)
		c.SetZoom(float64(v))
		if done {
			c.zoomTween = nil
		}
	}
}

// Update runs one frame of camera logic: the active panning mode (skipped
// while a ScrollTo runs), keyboard zoom, and tweens. target is the followed
// entity's bounds; p is only touched in PanMouse.
func (c *Camera) Update(target Rect, in FrameInput, p Pointer, dt float32) {
	if c.scrollTween == nil {
		switch c.Mode {
		case PanCenter:
			c.CenterOn(target)
		case PanBox:
			c.BoxFollow(target)
		case PanKeyboard:
			c.KeyboardPan(in)
		case PanBoxKeyboard:
			// Box first so the target stays inside while the keys pan.
			c.BoxFollow(target)
			c.KeyboardPan(in)
		default:
			if p != nil {
				c.EdgePan(p)
			}
		}
	}
	c.ZoomKeys(in)
	c.advanceTweens(dt)
}

// --- Transforms ---

// WorldToScreen maps a world point to viewport coordinates, including zoom.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	half := c.HalfViewport()
	return half.Add(p.Sub(c.Offset).Sub(half).Scale(c.Zoom))
}

// ScreenToWorld maps a viewport point back to world space. At zoom 0 every
// screen point maps to the world point under the viewport center.
func (c *Camera) ScreenToWorld(s Vec2) Vec2 {
	half := c.HalfViewport()
	if c.Zoom == 0 {
		return half.Add(c.Offset)
	}
	return s.Sub(half).Scale(1 / c.Zoom).Add(half).Add(c.Offset)
}

// VisibleBounds returns the world-space rectangle shown in the viewport.
// At zoom 0 it is an empty rect at the view center.
func (c *Camera) VisibleBounds() Rect {
	tl := c.ScreenToWorld(Vec2{})
	br := c.ScreenToWorld(Vec2{c.ViewW, c.ViewH})
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// BoxOnScreen returns the camera box in viewport coordinates, for debug
// overlays.
func (c *Camera) BoxOnScreen() Rect {
	tl := c.WorldToScreen(c.Box.TopLeft())
	br := c.WorldToScreen(Vec2{c.Box.Right(), c.Box.Bottom()})
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}
