package scrollcam

import (
	"context"
	"errors"
	"time"
)

// Host is a device bundle for hosts that run their own frame loop.
type Host interface {
	Input
	// Screen returns the surface to draw the next frame onto.
	Screen() Surface
	// Present shows the drawn frame.
	Present()
}

// FrameHook runs once per frame after the scene updated and before it draws.
// Hosts use it for per-frame housekeeping such as config reloads. A non-nil
// error stops the loop and is returned from Run.
type FrameHook func(s *Scene) error

// Clock paces the frame loop.
type Clock interface {
	// Wait blocks until the next frame is due or ctx is done.
	Wait(ctx context.Context) error
}

// TickerClock is a fixed-rate Clock. Frames that overrun are not caught up.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock returns a clock ticking fps times per second.
func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-c.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// Run drives s until the user quits or ctx is canceled: update, hooks, draw,
// present, wait. Quitting and cancellation both return nil.
func Run(ctx context.Context, s *Scene, h Host, clk Clock, hooks ...FrameHook) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := s.Update(h); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		for _, hook := range hooks {
			if err := hook(s); err != nil {
				return err
			}
		}
		s.Draw(h.Screen())
		h.Present()
		if err := clk.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// ReloadHook returns a FrameHook that applies config changes picked up by w.
// Load errors are logged and the current config stays in effect.
func ReloadHook(w *ConfigWatcher) FrameHook {
	return func(s *Scene) error {
		cfg, ok, err := w.Poll()
		if err != nil {
			s.logger.Warn("config reload failed", "path", w.Path(), "error", err)
			return nil
		}
		if ok {
			s.ApplyConfig(cfg)
		}
		return nil
	}
}
