package scrollcam

import (
	"fmt"
	"strings"
)

// Key identifies a logical input action. Hosts map physical keys onto these.
type Key uint8

const (
	KeyUp        Key = iota // move player up
	KeyDown                 // move player down
	KeyLeft                 // move player left
	KeyRight                // move player right
	KeyPanLeft              // keyboard camera pan left
	KeyPanRight             // keyboard camera pan right
	KeyPanUp                // keyboard camera pan up
	KeyPanDown              // keyboard camera pan down
	KeyZoomIn               // zoom in while held
	KeyZoomOut              // zoom out while held
	KeyQuit                 // window close requested
	KeyEscape               // escape key
	KeyRecenter             // tween the camera back onto the player (edge-triggered)
	KeyCycleMode            // switch to the next panning mode (edge-triggered)

	keyCount
)

var keyNames = [keyCount]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPanLeft:   "pan-left",
	KeyPanRight:  "pan-right",
	KeyPanUp:     "pan-up",
	KeyPanDown:   "pan-down",
	KeyZoomIn:    "zoom-in",
	KeyZoomOut:   "zoom-out",
	KeyQuit:      "quit",
	KeyEscape:    "escape",
	KeyRecenter:  "recenter",
	KeyCycleMode: "cycle-mode",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey returns the Key with the given name, as produced by Key.String.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Key(0); k < keyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("scrollcam: unknown key %q", name)
}

// Pointer is a cursor whose position the camera can read and rewrite.
// Edge panning teleports the pointer back onto the pan margin every frame.
type Pointer interface {
	CursorPosition() Vec2
	SetCursorPosition(p Vec2)
}

// Input is the per-frame input device a host provides.
type Input interface {
	Pointer
	IsKeyPressed(k Key) bool
	// Wheel returns the vertical scroll delta accumulated this frame.
	Wheel() float64
}

// FrameInput is the input snapshot the scene acts on for one frame.
type FrameInput struct {
	// Move is the player direction, each axis in {-1, 0, 1}.
	Move Vec2
	// Pan is the keyboard pan direction. Opposite keys cancel.
	Pan Vec2

	ZoomIn  bool
	ZoomOut bool
	Scroll  float64

	Quit      bool
	Recenter  bool
	CycleMode bool
}

// SampleInput reads the device state into a FrameInput. It has no side
// effects on the device.
func SampleInput(in Input) FrameInput {
	var fi FrameInput

	switch {
	case in.IsKeyPressed(KeyUp):
		fi.Move.Y = -1
	case in.IsKeyPressed(KeyDown):
		fi.Move.Y = 1
	}
	switch {
	case in.IsKeyPressed(KeyRight):
		fi.Move.X = 1
	case in.IsKeyPressed(KeyLeft):
		fi.Move.X = -1
	}

	if in.IsKeyPressed(KeyPanLeft) {
		fi.Pan.X--
	}
	if in.IsKeyPressed(KeyPanRight) {
		fi.Pan.X++
	}
	if in.IsKeyPressed(KeyPanUp) {
		fi.Pan.Y--
	}
	if in.IsKeyPressed(KeyPanDown) {
		fi.Pan.Y++
	}

	fi.ZoomIn = in.IsKeyPressed(KeyZoomIn)
	fi.ZoomOut = in.IsKeyPressed(KeyZoomOut)
	fi.Scroll = in.Wheel()
	fi.Quit = in.IsKeyPressed(KeyQuit) || in.IsKeyPressed(KeyEscape)
	fi.Recenter = in.IsKeyPressed(KeyRecenter)
	fi.CycleMode = in.IsKeyPressed(KeyCycleMode)
	return fi
}
