package scrollcam

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCamera() *Camera {
	return NewCamera(DefaultConfig())
}

func TestCameraDefaults(t *testing.T) {
	cam := newTestCamera()
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Mode != PanMouse {
		t.Errorf("Mode = %v, want mouse", cam.Mode)
	}
	want := Rect{X: 200, Y: 100, Width: 880, Height: 520}
	if cam.Box != want {
		t.Errorf("Box = %+v, want %+v", cam.Box, want)
	}
	if h := cam.HalfViewport(); h != (Vec2{640, 360}) {
		t.Errorf("HalfViewport = %+v, want (640,360)", h)
	}
	if !cam.Offset.IsZero() {
		t.Errorf("Offset = %+v, want zero", cam.Offset)
	}
}

func TestCameraCenterOnViewportCenter(t *testing.T) {
	cam := newTestCamera()
	// A 40x60 player centered on (640, 360).
	cam.CenterOn(Rect{X: 620, Y: 330, Width: 40, Height: 60})
	if !cam.Offset.IsZero() {
		t.Errorf("Offset = %+v, want (0,0)", cam.Offset)
	}
}

func TestCameraCenterOn(t *testing.T) {
	cam := newTestCamera()
	cam.CenterOn(Rect{X: 1000, Y: 2000, Width: 100, Height: 50})
	want := Vec2{1050 - 640, 2025 - 360}
	if cam.Offset != want {
		t.Errorf("Offset = %+v, want %+v", cam.Offset, want)
	}
}

func TestCameraBoxFollowSnapsLeft(t *testing.T) {
	cam := newTestCamera()
	target := Rect{X: 300, Y: 300, Width: 40, Height: 60}
	cam.BoxFollow(target)
	if cam.Box.Left() != 200 {
		t.Fatalf("target inside box moved it: left = %f", cam.Box.Left())
	}

	target.X = 50
	cam.BoxFollow(target)
	if cam.Box.Left() != 50 {
		t.Errorf("Box.Left = %f, want 50", cam.Box.Left())
	}
	if cam.Box.Width != 880 || cam.Box.Height != 520 {
		t.Errorf("box size changed to %fx%f", cam.Box.Width, cam.Box.Height)
	}
	if cam.Offset != (Vec2{-150, 0}) {
		t.Errorf("Offset = %+v, want (-150,0)", cam.Offset)
	}
}

func TestCameraConfigureKeepsOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = PanBox
	cam := NewCamera(cfg)
	target := Rect{X: 620, Y: 330, Width: 40, Height: 60}
	cam.BoxFollow(target)
	if cam.Offset != (Vec2{}) {
		t.Fatalf("Offset = %+v, want zero", cam.Offset)
	}

	cfg.Borders.Left = 300
	cam.Configure(cfg)
	cam.BoxFollow(target)
	if cam.Offset != (Vec2{}) {
		t.Errorf("Offset after border change = %+v, want zero", cam.Offset)
	}
	if cam.Box != (Rect{X: 300, Y: 100, Width: 780, Height: 520}) {
		t.Errorf("Box = %+v", cam.Box)
	}
}

func TestCameraBoxFollowOtherEdges(t *testing.T) {
	cam := newTestCamera()
	cam.BoxFollow(Rect{X: 1100, Y: 650, Width: 40, Height: 60})
	if cam.Box.Right() != 1140 {
		t.Errorf("Box.Right = %f, want 1140", cam.Box.Right())
	}
	if cam.Box.Bottom() != 710 {
		t.Errorf("Box.Bottom = %f, want 710", cam.Box.Bottom())
	}
	cam.BoxFollow(Rect{X: 500, Y: 20, Width: 40, Height: 60})
	if cam.Box.Top() != 20 {
		t.Errorf("Box.Top = %f, want 20", cam.Box.Top())
	}
}

func TestCameraBoxFollowDeadZone(t *testing.T) {
	cam := newTestCamera()
	before := cam.Box
	for _, x := range []float64{200, 400, 800, 1040} {
		cam.BoxFollow(Rect{X: x, Y: 300, Width: 40, Height: 60})
	}
	if cam.Box != before {
		t.Errorf("box moved inside dead zone: %+v -> %+v", before, cam.Box)
	}
}

func TestCameraBoxNeverShrinks(t *testing.T) {
	cam := newTestCamera()
	target := Rect{X: 640, Y: 360, Width: 40, Height: 60}
	steps := []Vec2{{-37, 0}, {0, 53}, {91, -12}, {-5, -80}, {300, 300}, {-700, 10}, {12, -500}}
	for i := 0; i < 40; i++ {
		d := steps[i%len(steps)]
		target.Translate(d.X, d.Y)
		cam.BoxFollow(target)
		if cam.Box.Width != 880 || cam.Box.Height != 520 {
			t.Fatalf("step %d: box size %fx%f", i, cam.Box.Width, cam.Box.Height)
		}
		if !cam.Box.ContainsRect(target) {
			t.Fatalf("step %d: box %+v does not contain target %+v", i, cam.Box, target)
		}
	}
}

func TestCameraKeyboardPan(t *testing.T) {
	cam := newTestCamera()
	cam.KeyboardPan(FrameInput{Pan: Vec2{-1, 0}})
	if cam.Box.X != 195 || cam.Offset != (Vec2{-5, 0}) {
		t.Errorf("after pan left: box.X = %f offset = %+v", cam.Box.X, cam.Offset)
	}
	cam.KeyboardPan(FrameInput{Pan: Vec2{1, 1}})
	if cam.Offset != (Vec2{0, 5}) {
		t.Errorf("after diagonal: offset = %+v, want (0,5)", cam.Offset)
	}
}

func TestCameraBoxThenKeyboard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = PanBoxKeyboard
	cam := NewCamera(cfg)
	target := Rect{X: 620, Y: 330, Width: 40, Height: 60}

	cam.Update(target, FrameInput{}, nil, 1.0/60)
	before := cam.Offset

	cam.Update(target, FrameInput{Pan: Vec2{1, 0}}, nil, 1.0/60)
	if got := cam.Offset.X - before.X; got != cam.KeyboardSpeed {
		t.Errorf("offset X changed by %f, want %f", got, cam.KeyboardSpeed)
	}
	if cam.Offset.Y != before.Y {
		t.Errorf("offset Y changed: %f -> %f", before.Y, cam.Offset.Y)
	}
	if !cam.Box.ContainsRect(target) {
		t.Errorf("box %+v lost the target", cam.Box)
	}
}

func TestCameraEdgePanSides(t *testing.T) {
	tests := []struct {
		name    string
		pointer Vec2
		delta   Vec2
		clamped Vec2
	}{
		{"left", Vec2{150, 360}, Vec2{-50, 0}, Vec2{200, 360}},
		{"right", Vec2{1200, 300}, Vec2{120, 0}, Vec2{1080, 300}},
		{"top", Vec2{640, 40}, Vec2{0, -60}, Vec2{640, 100}},
		{"bottom", Vec2{640, 700}, Vec2{0, 80}, Vec2{640, 620}},
		{"top-left", Vec2{100, 50}, Vec2{-100, -50}, Vec2{200, 100}},
		{"top-right", Vec2{1250, 30}, Vec2{170, -70}, Vec2{1080, 100}},
		{"bottom-left", Vec2{150, 700}, Vec2{-50, 80}, Vec2{200, 620}},
		{"bottom-right", Vec2{1100, 650}, Vec2{20, 30}, Vec2{1080, 620}},
		{"top line past left", Vec2{150, 100}, Vec2{-50, 0}, Vec2{200, 100}},
		{"left line past bottom", Vec2{200, 700}, Vec2{0, 80}, Vec2{200, 620}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newTestCamera()
			in := NewScriptedInput(tt.pointer.X, tt.pointer.Y)
			delta := cam.EdgePan(in)
			if delta != tt.delta {
				t.Errorf("delta = %+v, want %+v", delta, tt.delta)
			}
			if in.CursorPosition() != tt.clamped {
				t.Errorf("pointer = %+v, want %+v", in.CursorPosition(), tt.clamped)
			}
			want := tt.delta.Scale(cam.MouseSpeed)
			if !approxEqual(cam.Offset.X, want.X, epsilon) || !approxEqual(cam.Offset.Y, want.Y, epsilon) {
				t.Errorf("offset = %+v, want %+v", cam.Offset, want)
			}
		})
	}
}

func TestCameraEdgePanInsideIsNoop(t *testing.T) {
	cam := newTestCamera()
	in := NewScriptedInput(640, 360)
	if d := cam.EdgePan(in); !d.IsZero() {
		t.Errorf("delta = %+v, want zero", d)
	}
	if in.Warps != 0 {
		t.Errorf("pointer warped %d times", in.Warps)
	}
}

func TestCameraEdgePanIdempotent(t *testing.T) {
	cam := newTestCamera()
	for x := -100.0; x <= 1400; x += 37 {
		for y := -100.0; y <= 800; y += 29 {
			in := NewScriptedInput(x, y)
			cam.EdgePan(in)
			after := in.CursorPosition()
			warps := in.Warps
			offset := cam.Offset

			if d := cam.EdgePan(in); !d.IsZero() {
				t.Fatalf("pointer (%v,%v): second call delta = %+v", x, y, d)
			}
			if in.CursorPosition() != after || in.Warps != warps {
				t.Fatalf("pointer (%v,%v): second call moved pointer", x, y)
			}
			if cam.Offset != offset {
				t.Fatalf("pointer (%v,%v): second call moved offset", x, y)
			}
		}
	}
}

func TestCameraEdgePanAccumulates(t *testing.T) {
	cam := newTestCamera()
	in := NewScriptedInput(640, 360)
	for i := 0; i < 3; i++ {
		in.MoveTo(150, 360) // user keeps pushing left
		cam.EdgePan(in)
	}
	if !approxEqual(cam.Offset.X, -60, epsilon) {
		t.Errorf("Offset.X = %f, want -60", cam.Offset.X)
	}
}

func TestCameraZoomFloor(t *testing.T) {
	cam := newTestCamera()
	cam.Zoom = 0.05
	for i := 0; i < 10; i++ {
		cam.ZoomKeys(FrameInput{ZoomOut: true})
	}
	if cam.Zoom != 0 {
		t.Errorf("Zoom = %v, want exactly 0", cam.Zoom)
	}
}

func TestCameraZoomNoCeiling(t *testing.T) {
	cam := newTestCamera()
	for i := 0; i < 100; i++ {
		cam.ZoomKeys(FrameInput{ZoomIn: true})
	}
	if !approxEqual(cam.Zoom, 11, 1e-6) {
		t.Errorf("Zoom = %f, want 11", cam.Zoom)
	}
}

func TestCameraZoomWheel(t *testing.T) {
	cam := newTestCamera()
	cam.ZoomWheel(2)
	if !approxEqual(cam.Zoom, 1.06, epsilon) {
		t.Errorf("Zoom = %f, want 1.06", cam.Zoom)
	}
	cam.ZoomWheel(-100)
	if cam.Zoom != 0 {
		t.Errorf("Zoom = %f, want 0", cam.Zoom)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = PanCenter
	cam := NewCamera(cfg)
	target := Rect{X: 620, Y: 330, Width: 40, Height: 60}

	cam.ScrollTo(Vec2{1000, 1000}, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling = false after ScrollTo")
	}

	// Center mode is suspended while the scroll runs.
	cam.Update(target, FrameInput{}, nil, 0.5)
	if !approxEqual(cam.Offset.X, 180, 1.0) || !approxEqual(cam.Offset.Y, 320, 1.0) {
		t.Errorf("scroll halfway: offset = %+v, want ~(180,320)", cam.Offset)
	}

	cam.Update(target, FrameInput{}, nil, 0.5)
	if !approxEqual(cam.Offset.X, 360, 1.0) || !approxEqual(cam.Offset.Y, 640, 1.0) {
		t.Errorf("scroll end: offset = %+v, want ~(360,640)", cam.Offset)
	}
	if cam.Scrolling() {
		t.Error("Scrolling = true after tween finished")
	}

	// Center mode resumes.
	cam.Update(target, FrameInput{}, nil, 1.0/60)
	if !cam.Offset.IsZero() {
		t.Errorf("after scroll: offset = %+v, want (0,0)", cam.Offset)
	}
}

func TestCameraScrollToMovesBox(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = PanBox
	cam := NewCamera(cfg)
	cam.ScrollTo(Vec2{740, 460}, 0.1, ease.Linear)
	cam.Update(Rect{X: 620, Y: 330, Width: 40, Height: 60}, FrameInput{}, nil, 0.1)

	if !approxEqual(cam.Offset.X, 100, 1e-3) || !approxEqual(cam.Offset.Y, 100, 1e-3) {
		t.Fatalf("offset = %+v, want (100,100)", cam.Offset)
	}
	if !approxEqual(cam.Box.X, 300, 1e-3) || !approxEqual(cam.Box.Y, 200, 1e-3) {
		t.Errorf("box = %+v, want top-left (300,200)", cam.Box)
	}
}

func TestCameraZoomTo(t *testing.T) {
	cam := newTestCamera()
	cam.ZoomTo(2, 1.0, ease.Linear)
	cam.Update(Rect{}, FrameInput{}, nil, 0.5)
	if !approxEqual(cam.Zoom, 1.5, 1e-3) {
		t.Errorf("halfway zoom = %f, want 1.5", cam.Zoom)
	}
	cam.Update(Rect{}, FrameInput{}, nil, 0.5)
	if !approxEqual(cam.Zoom, 2, 1e-3) {
		t.Errorf("final zoom = %f, want 2", cam.Zoom)
	}
}

func TestCameraZoomKeysCancelZoomTo(t *testing.T) {
	cam := newTestCamera()
	cam.ZoomTo(3, 1.0, ease.Linear)
	cam.Update(Rect{}, FrameInput{ZoomOut: true}, nil, 0.5)
	z := cam.Zoom
	cam.Update(Rect{}, FrameInput{}, nil, 0.5)
	if cam.Zoom != z {
		t.Errorf("zoom kept tweening after manual zoom: %f -> %f", z, cam.Zoom)
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := newTestCamera()
	cam.Offset = Vec2{100, 50}
	if s := cam.WorldToScreen(Vec2{300, 200}); s != (Vec2{200, 150}) {
		t.Errorf("zoom 1: WorldToScreen = %+v, want (200,150)", s)
	}

	cam.Zoom = 2
	// The world point under the viewport center stays put.
	if s := cam.WorldToScreen(Vec2{740, 410}); s != (Vec2{640, 360}) {
		t.Errorf("zoom 2: center maps to %+v", s)
	}
	s1 := cam.WorldToScreen(Vec2{741, 410})
	if !approxEqual(s1.X-640, 2, epsilon) {
		t.Errorf("zoom 2: 1 world unit = %f screen pixels, want 2", s1.X-640)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newTestCamera()
	cam.Offset = Vec2{42, -17}
	cam.Zoom = 1.5

	orig := Vec2{123, -456}
	back := cam.ScreenToWorld(cam.WorldToScreen(orig))
	if !approxEqual(back.X, orig.X, 1e-6) || !approxEqual(back.Y, orig.Y, 1e-6) {
		t.Errorf("roundtrip: got %+v, want %+v", back, orig)
	}
}

func TestVisibleBounds(t *testing.T) {
	cam := newTestCamera()
	cam.Offset = Vec2{10, 20}
	b := cam.VisibleBounds()
	if b != (Rect{X: 10, Y: 20, Width: 1280, Height: 720}) {
		t.Errorf("zoom 1: bounds = %+v", b)
	}
	cam.Zoom = 2
	b = cam.VisibleBounds()
	if !approxEqual(b.Width, 640, 1e-6) || !approxEqual(b.Height, 360, 1e-6) {
		t.Errorf("zoom 2: size = %fx%f, want 640x360", b.Width, b.Height)
	}
}

func TestCameraSetModeSyncsBox(t *testing.T) {
	cam := newTestCamera()
	cam.Offset = Vec2{500, -40}
	cam.SetMode(PanBox)
	if cam.Box.X != 700 || cam.Box.Y != 60 {
		t.Errorf("box = %+v, want top-left (700,60)", cam.Box)
	}
	cam.BoxFollow(Rect{X: 1000, Y: 300, Width: 10, Height: 10})
	if cam.Offset != (Vec2{500, -40}) {
		t.Errorf("offset jumped to %+v", cam.Offset)
	}
}

func TestCameraCycleMode(t *testing.T) {
	cam := newTestCamera()
	want := []PanMode{PanCenter, PanBox, PanKeyboard, PanBoxKeyboard, PanMouse}
	for i, m := range want {
		if got := cam.CycleMode(); got != m {
			t.Errorf("cycle %d = %v, want %v", i, got, m)
		}
	}
}

func TestParsePanMode(t *testing.T) {
	for m := PanMode(0); m < panModeCount; m++ {
		got, err := ParsePanMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParsePanMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParsePanMode("sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestCameraReset(t *testing.T) {
	cam := newTestCamera()
	cam.Offset = Vec2{5, 5}
	cam.Zoom = 3
	cam.Box.Translate(40, 40)
	cam.ScrollTo(Vec2{}, 1, ease.Linear)
	cam.Reset()
	if !cam.Offset.IsZero() || cam.Zoom != 1 || cam.Box.X != 200 || cam.Scrolling() {
		t.Errorf("after reset: offset %+v zoom %f box %+v", cam.Offset, cam.Zoom, cam.Box)
	}
}
