package scrollcam

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted input sequence across frames for automated
// testing. While it runs, the scene reads its ScriptedInput instead of the
// host device. Attach to a Scene via SetTestRunner.
//
// Actions: press/release (key), move (x, y), scroll (dy), wait (frames),
// screenshot (label), mode (mode).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	input     *ScriptedInput
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner. Keys and modes are checked
// up front so a bad script fails before the first frame.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release":
			if _, err := ParseKey(st.Key); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		case "mode":
			if _, err := ParsePanMode(st.Mode); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		case "move", "scroll", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, input: &ScriptedInput{}}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The scripted pointer
// starts at the viewport center. The runner's step method is called from
// Scene.Update each frame until Done.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.runner = runner
	if runner != nil {
		c := s.camera.HalfViewport()
		runner.input.MoveTo(c.X, c.Y)
	}
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Input returns the scripted device the runner drives.
func (r *TestRunner) Input() *ScriptedInput {
	return r.input
}

// step advances the runner by one frame. Consecutive instant actions
// (press, release, move, scroll, mode, screenshot) all apply in the same
// frame; wait consumes frames.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
	} else {
		r.advance(s)
	}
	if r.waitCount == 0 && r.cursor >= len(r.steps) {
		r.done = true
	}
}

// advance applies steps until a wait or the end of the script.
func (r *TestRunner) advance(s *Scene) {
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "press":
			k, _ := ParseKey(st.Key)
			r.input.Press(k)
		case "release":
			k, _ := ParseKey(st.Key)
			r.input.Release(k)
		case "move":
			r.input.MoveTo(st.X, st.Y)
		case "scroll":
			r.input.ScrollBy(st.DY)
		case "mode":
			m, _ := ParsePanMode(st.Mode)
			s.camera.SetMode(m)
			s.emit(EventModeChanged)
		case "screenshot":
			s.Screenshot(st.Label)
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
			return
		}
	}
}
