// Package ebitenhost runs a scrollcam scene in an Ebitengine window.
//
// It supplies the scene's devices: an [Input] over Ebitengine's keyboard,
// cursor, and wheel, [Image] surfaces and [Buffers] for the zoom buffer, and
// placeholder sprites from [NewSprites]. [Run] drives the scene at the
// configured frame rate and draws a small HUD on top.
package ebitenhost

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scrollcam"
)

// RunConfig configures Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window size. Zero uses the scene viewport.
	Width, Height int
	// ShowFPS adds the measured frame rate to the HUD.
	ShowFPS bool
	// GrabPointer captures the OS cursor for the lifetime of Run so edge
	// panning keeps going past the window edge.
	GrabPointer bool
	// Watcher, when set, hot-reloads the scene config.
	Watcher *scrollcam.ConfigWatcher
	// Hooks run every frame after the scene updated, after any reload.
	Hooks []scrollcam.FrameHook
	// ScreenshotDir receives queued screenshots. Defaults to "screenshots".
	ScreenshotDir string
	// KeyMap overrides DefaultKeyMap.
	KeyMap map[ebiten.Key]scrollcam.Key
	// Logger receives host messages. Defaults to slog.Default().
	Logger *slog.Logger
}

type game struct {
	scene   *scrollcam.Scene
	input   *Input
	screen  Image
	hud     *hud
	hooks   []scrollcam.FrameHook
	shotDir string
	logger  *slog.Logger
}

// Run opens a window and drives scene until the user quits or closes the
// window. Quitting is not an error.
func Run(scene *scrollcam.Scene, cfg RunConfig) error {
	sc := scene.Config()
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = sc.ViewportWidth, sc.ViewportHeight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "ebitenhost")
	shotDir := cfg.ScreenshotDir
	if shotDir == "" {
		shotDir = "screenshots"
	}

	overlay, err := newHUD(cfg.ShowFPS)
	if err != nil {
		return err
	}

	g := &game{
		scene:   scene,
		input:   NewInput(cfg.KeyMap),
		hud:     overlay,
		shotDir: shotDir,
		logger:  logger,
	}
	if cfg.Watcher != nil {
		g.hooks = append(g.hooks, scrollcam.ReloadHook(cfg.Watcher))
	}
	g.hooks = append(g.hooks, cfg.Hooks...)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(sc.FrameRate)
	ebiten.SetWindowClosingHandled(true)

	if cfg.GrabPointer {
		prev := ebiten.CursorMode()
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		defer ebiten.SetCursorMode(prev)
	}

	logger.Info("starting", "mode", sc.Mode, "zoom", sc.Zoom, "grab", cfg.GrabPointer)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	logger.Info("stopped", "frames", scene.Frame())
	return nil
}

func (g *game) Update() error {
	g.input.Poll()
	if err := g.scene.Update(g.input); err != nil {
		if errors.Is(err, scrollcam.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	for _, hook := range g.hooks {
		if err := hook(g.scene); err != nil {
			return err
		}
	}
	if fr := g.scene.Config().FrameRate; fr != ebiten.TPS() {
		ebiten.SetTPS(fr)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen.img = screen
	g.scene.Draw(&g.screen)
	flushScreenshots(screen, g.shotDir, g.scene.TakeScreenshotRequests(), g.logger)
	g.hud.draw(screen, g.scene)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.scene.Config()
	return cfg.ViewportWidth, cfg.ViewportHeight
}
