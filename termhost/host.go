// Package termhost runs a scrollcam scene in a terminal through tcell.
//
// World pixels map onto terminal cells: with the default 16×30 cell size
// a 1280×720 viewport fills an 80×24 terminal. Sprites are [Glyph] runes,
// the zoom buffer is a [Canvas], and the mouse drives the edge-pan pointer.
//
// Terminals report key presses but not releases, so a key counts as held
// for a short window after each press; keyboard autorepeat keeps it held.
package termhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/scrollcam"
)

// Defaults for Config.
const (
	DefaultCellW      = 16
	DefaultCellH      = 30
	DefaultHoldFrames = 6
)

var runeKeys = map[rune]scrollcam.Key{
	'w': scrollcam.KeyPanUp,
	'a': scrollcam.KeyPanLeft,
	's': scrollcam.KeyPanDown,
	'd': scrollcam.KeyPanRight,
	'q': scrollcam.KeyZoomIn,
	'+': scrollcam.KeyZoomIn,
	'e': scrollcam.KeyZoomOut,
	'-': scrollcam.KeyZoomOut,
	'r': scrollcam.KeyRecenter,
}

var specialKeys = map[tcell.Key]scrollcam.Key{
	tcell.KeyUp:     scrollcam.KeyUp,
	tcell.KeyDown:   scrollcam.KeyDown,
	tcell.KeyLeft:   scrollcam.KeyLeft,
	tcell.KeyRight:  scrollcam.KeyRight,
	tcell.KeyEscape: scrollcam.KeyEscape,
	tcell.KeyTab:    scrollcam.KeyCycleMode,
	tcell.KeyCtrlC:  scrollcam.KeyQuit,
}

// Host implements scrollcam.Host over a tcell screen.
type Host struct {
	screen tcell.Screen
	canvas *Canvas
	scene  *scrollcam.Scene

	cellW, cellH float64
	holdFrames   int
	held         map[scrollcam.Key]int

	pointer     scrollcam.Vec2
	lastMouse   scrollcam.Vec2
	mousePrimed bool

	wheel  float64
	events chan tcell.Event
}

// NewHost creates a host drawing a canvas of the scene viewport onto screen.
func NewHost(screen tcell.Screen, viewW, viewH int, cfg Config) *Host {
	cfg = cfg.withDefaults()
	return &Host{
		screen:     screen,
		canvas:     NewCanvas(viewW, viewH, cfg.CellW, cfg.CellH),
		cellW:      float64(cfg.CellW),
		cellH:      float64(cfg.CellH),
		holdFrames: cfg.HoldFrames,
		held:       make(map[scrollcam.Key]int),
		pointer:    scrollcam.Vec2{X: float64(viewW) / 2, Y: float64(viewH) / 2},
		events:     make(chan tcell.Event, 256),
	}
}

// Canvas returns the frame canvas.
func (h *Host) Canvas() *Canvas { return h.canvas }

// SetStatusScene makes Present draw a status line for s.
func (h *Host) SetStatusScene(s *scrollcam.Scene) { h.scene = s }

// HandleEvent applies a single tcell event to the input state.
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if k, ok := runeKeys[ev.Rune()]; ok {
				h.hold(k)
			}
			return
		}
		if k, ok := specialKeys[ev.Key()]; ok {
			h.hold(k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		raw := scrollcam.Vec2{X: (float64(x) + 0.5) * h.cellW, Y: (float64(y) + 0.5) * h.cellH}
		if !h.mousePrimed {
			h.pointer = raw
			h.mousePrimed = true
		} else {
			h.pointer = h.pointer.Add(raw.Sub(h.lastMouse))
		}
		h.lastMouse = raw
		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			h.wheel++
		}
		if btn&tcell.WheelDown != 0 {
			h.wheel--
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func (h *Host) hold(k scrollcam.Key) {
	h.held[k] = h.holdFrames
}

// Pump ages held keys by one frame, clears the wheel, and applies every
// queued event. Call once per frame before Scene.Update.
func (h *Host) Pump() {
	for k, n := range h.held {
		if n <= 1 {
			delete(h.held, k)
		} else {
			h.held[k] = n - 1
		}
	}
	h.wheel = 0
	for {
		select {
		case ev := <-h.events:
			h.HandleEvent(ev)
		default:
			return
		}
	}
}

// pollEvents forwards screen events to the frame loop until the screen is
// finalized.
func (h *Host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		default: // frame loop stalled; drop
		}
	}
}

// IsKeyPressed reports whether k was pressed within the hold window.
func (h *Host) IsKeyPressed(k scrollcam.Key) bool { return h.held[k] > 0 }

// CursorPosition returns the virtual pointer in viewport pixels.
func (h *Host) CursorPosition() scrollcam.Vec2 { return h.pointer }

// SetCursorPosition moves the virtual pointer.
func (h *Host) SetCursorPosition(p scrollcam.Vec2) { h.pointer = p }

// Wheel returns the wheel delta received since the last Pump.
func (h *Host) Wheel() float64 { return h.wheel }

// Screen returns the frame canvas.
func (h *Host) Screen() scrollcam.Surface { return h.canvas }

// Present copies the canvas to the terminal, draws the status line, and
// shows the result.
func (h *Host) Present() {
	h.canvas.flush(h.screen)
	if h.scene != nil {
		cam := h.scene.Camera()
		status := fmt.Sprintf(" %s  zoom %.2f  offset %.0f,%.0f ", cam.Mode, cam.Zoom, cam.Offset.X, cam.Offset.Y)
		drawText(h.screen, 0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	}
	h.screen.Show()
}

// drawText writes s starting at (x, y), advancing by each rune's display
// width.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
