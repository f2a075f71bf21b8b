package scrollcam

import (
	"context"
	"errors"
	"testing"
)

type fakeHost struct {
	*ScriptedInput
	screen   recordingSurface
	presents int
}

func (h *fakeHost) Screen() Surface { return &h.screen }
func (h *fakeHost) Present() { h.presents++ }

type countClock struct {
	waits  int
	cancel context.CancelFunc
	after  int
}

func (c *countClock) Wait(ctx context.Context) error {
	c.waits++
	if c.cancel != nil && c.waits >= c.after {
		c.cancel()
	}
	return ctx.Err()
}

func TestRunQuitsCleanly(t *testing.T) {
	s := newPlayerScene(PanMouse)
	h := &fakeHost{ScriptedInput: NewScriptedInput(640, 360)}
	clk := &countClock{}

	quitAt := func(s *Scene) error {
		if s.Frame() == 3 {
			h.Press(KeyEscape)
		}
		return nil
	}
	if err := Run(context.Background(), s, h, clk, quitAt); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if h.presents != 3 || clk.waits != 3 {
		t.Errorf("presents = %d, waits = %d, want 3", h.presents, clk.waits)
	}
	if len(h.screen.clears) != 3 {
		t.Errorf("draws = %d, want 3", len(h.screen.clears))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newPlayerScene(PanMouse)
	h := &fakeHost{ScriptedInput: NewScriptedInput(640, 360)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clk := &countClock{cancel: cancel, after: 5}

	if err := Run(ctx, s, h, clk); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if s.Frame() != 5 {
		t.Errorf("frames = %d, want 5", s.Frame())
	}
}

func TestRunHookError(t *testing.T) {
	s := newPlayerScene(PanMouse)
	h := &fakeHost{ScriptedInput: NewScriptedInput(640, 360)}
	boom := errors.New("boom")

	err := Run(context.Background(), s, h, &countClock{}, func(*Scene) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Run = %v, want boom", err)
	}
	if h.presents != 0 {
		t.Errorf("presented %d frames after hook error", h.presents)
	}
}

func TestRunAlreadyCanceled(t *testing.T) {
	s := newPlayerScene(PanMouse)
	h := &fakeHost{ScriptedInput: NewScriptedInput(640, 360)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, s, h, &countClock{}); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if s.Frame() != 0 {
		t.Errorf("ran %d frames", s.Frame())
	}
}

func TestTickerClockCancel(t *testing.T) {
	clk := NewTickerClock(1)
	defer clk.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := clk.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}
