package termhost

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrollcam"
)

// Config configures a terminal host.
type Config struct {
	// CellW and CellH are the pixel block one cell stands for.
	CellW, CellH int
	// HoldFrames is how long a key stays held after a press.
	HoldFrames int
	// Mouse enables mouse motion and wheel reporting.
	Mouse bool
	// Watcher, when set, hot-reloads the scene config.
	Watcher *scrollcam.ConfigWatcher
	// Hooks run every frame after the scene updated, after any reload.
	Hooks []scrollcam.FrameHook
	// Logger receives host messages. Defaults to slog.Default().
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.CellW <= 0 {
		c.CellW = DefaultCellW
	}
	if c.CellH <= 0 {
		c.CellH = DefaultCellH
	}
	if c.HoldFrames <= 0 {
		c.HoldFrames = DefaultHoldFrames
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// frameClock paces the loop and pumps terminal events after each wait so
// the next Scene.Update sees them.
type frameClock struct {
	ticker *scrollcam.TickerClock
	host   *Host
}

func (c *frameClock) Wait(ctx context.Context) error {
	if err := c.ticker.Wait(ctx); err != nil {
		return err
	}
	c.host.Pump()
	return nil
}

// Run drives scene on an initialized screen until the user quits, ctx is
// canceled, or the process receives SIGINT or SIGTERM. The caller owns the
// screen and calls Fini.
func Run(ctx context.Context, scene *scrollcam.Scene, screen tcell.Screen, cfg Config) error {
	cfg = cfg.withDefaults()
	logger := cfg.Logger.With("component", "termhost")
	sc := scene.Config()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Mouse {
		screen.EnableMouse(tcell.MouseMotionEvents)
		defer screen.DisableMouse()
	}
	screen.HideCursor()

	h := NewHost(screen, sc.ViewportWidth, sc.ViewportHeight, cfg)
	h.SetStatusScene(scene)
	go h.pollEvents()

	clk := &frameClock{ticker: scrollcam.NewTickerClock(sc.FrameRate), host: h}
	defer clk.ticker.Stop()

	var hooks []scrollcam.FrameHook
	if cfg.Watcher != nil {
		hooks = append(hooks, scrollcam.ReloadHook(cfg.Watcher))
	}
	hooks = append(hooks, cfg.Hooks...)

	cols, rows := h.Canvas().Cells()
	logger.Info("starting", "mode", sc.Mode, "cols", cols, "rows", rows)
	h.Pump()
	err := scrollcam.Run(ctx, scene, h, clk, hooks...)
	logger.Info("stopped", "frames", scene.Frame(), "error", err)
	return err
}
