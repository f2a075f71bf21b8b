package scrollcam

// ScriptedInput is an in-memory Input. Keys, pointer, and wheel are set by
// code rather than a device, which makes scenes drivable from tests and from
// a TestRunner script.
type ScriptedInput struct {
	keys   [keyCount]bool
	cursor Vec2
	wheel  float64

	// Warps counts SetCursorPosition calls, so tests can observe clamping.
	Warps int
}

// NewScriptedInput returns a ScriptedInput with the pointer at (x, y).
func NewScriptedInput(x, y float64) *ScriptedInput {
	return &ScriptedInput{cursor: Vec2{x, y}}
}

// Press holds k down until Release.
func (in *ScriptedInput) Press(k Key) {
	if k < keyCount {
		in.keys[k] = true
	}
}

// Release lets go of k.
func (in *ScriptedInput) Release(k Key) {
	if k < keyCount {
		in.keys[k] = false
	}
}

// ReleaseAll lets go of every key.
func (in *ScriptedInput) ReleaseAll() {
	in.keys = [keyCount]bool{}
}

// MoveTo places the pointer at (x, y) without counting as a warp.
func (in *ScriptedInput) MoveTo(x, y float64) {
	in.cursor = Vec2{x, y}
}

// ScrollBy queues a wheel delta for the next frame. Deltas accumulate until
// EndFrame.
func (in *ScriptedInput) ScrollBy(dy float64) {
	in.wheel += dy
}

// EndFrame clears per-frame state (the wheel delta).
func (in *ScriptedInput) EndFrame() {
	in.wheel = 0
}

func (in *ScriptedInput) IsKeyPressed(k Key) bool {
	return k < keyCount && in.keys[k]
}

func (in *ScriptedInput) CursorPosition() Vec2 { return in.cursor }

func (in *ScriptedInput) SetCursorPosition(p Vec2) {
	in.cursor = p
	in.Warps++
}

func (in *ScriptedInput) Wheel() float64 { return in.wheel }
