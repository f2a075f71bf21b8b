package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/scrollcam"
)

// DefaultKeyMap binds physical keys to scene actions. Arrows move the player,
// WASD pans the camera in the keyboard modes, Q zooms in and E zooms out.
var DefaultKeyMap = map[ebiten.Key]scrollcam.Key{
	ebiten.KeyArrowUp:    scrollcam.KeyUp,
	ebiten.KeyArrowDown:  scrollcam.KeyDown,
	ebiten.KeyArrowLeft:  scrollcam.KeyLeft,
	ebiten.KeyArrowRight: scrollcam.KeyRight,
	ebiten.KeyA:          scrollcam.KeyPanLeft,
	ebiten.KeyD:          scrollcam.KeyPanRight,
	ebiten.KeyW:          scrollcam.KeyPanUp,
	ebiten.KeyS:          scrollcam.KeyPanDown,
	ebiten.KeyQ:          scrollcam.KeyZoomIn,
	ebiten.KeyE:          scrollcam.KeyZoomOut,
	ebiten.KeyEscape:     scrollcam.KeyEscape,
	ebiten.KeyR:          scrollcam.KeyRecenter,
	ebiten.KeyTab:        scrollcam.KeyCycleMode,
}

// Input adapts Ebitengine's polled input to scrollcam.Input.
//
// Ebitengine cannot move the OS cursor, so the pointer the scene sees is
// virtual: it follows the raw cursor's movement, and SetCursorPosition moves
// only the virtual pointer. With the cursor captured the raw position is
// unbounded, so a held pan gesture keeps scrolling.
type Input struct {
	keyMap map[ebiten.Key]scrollcam.Key

	held    map[scrollcam.Key]bool
	pressed []ebiten.Key

	virtual scrollcam.Vec2
	lastRaw scrollcam.Vec2
	primed  bool

	wheel   float64
	closing bool
}

// NewInput returns an Input using keyMap, or DefaultKeyMap when nil.
func NewInput(keyMap map[ebiten.Key]scrollcam.Key) *Input {
	if keyMap == nil {
		keyMap = DefaultKeyMap
	}
	return &Input{keyMap: keyMap, held: make(map[scrollcam.Key]bool)}
}

// Poll reads this tick's device state. Call once per ebiten Update, before
// Scene.Update.
func (in *Input) Poll() {
	in.pressed = inpututil.AppendPressedKeys(in.pressed[:0])
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	in.update(in.pressed, scrollcam.Vec2{X: float64(x), Y: float64(y)}, wy, ebiten.IsWindowBeingClosed())
}

// update applies a device snapshot. Split from Poll so it runs without a
// window.
func (in *Input) update(pressed []ebiten.Key, raw scrollcam.Vec2, wheel float64, closing bool) {
	clear(in.held)
	for _, k := range pressed {
		if action, ok := in.keyMap[k]; ok {
			in.held[action] = true
		}
	}

	if !in.primed {
		in.virtual = raw
		in.primed = true
	} else {
		in.virtual = in.virtual.Add(raw.Sub(in.lastRaw))
	}
	in.lastRaw = raw

	in.wheel = wheel
	in.closing = closing
}

// IsKeyPressed reports whether any physical key bound to k is down. KeyQuit
// is held while the window is being closed.
func (in *Input) IsKeyPressed(k scrollcam.Key) bool {
	if k == scrollcam.KeyQuit {
		return in.closing
	}
	return in.held[k]
}

// CursorPosition returns the virtual pointer.
func (in *Input) CursorPosition() scrollcam.Vec2 { return in.virtual }

// SetCursorPosition moves the virtual pointer. The OS cursor stays put.
func (in *Input) SetCursorPosition(p scrollcam.Vec2) { in.virtual = p }

// Wheel returns this tick's vertical wheel delta.
func (in *Input) Wheel() float64 { return in.wheel }
