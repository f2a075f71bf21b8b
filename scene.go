package scrollcam

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

// ErrQuit is returned by Scene.Update when the user asked to quit. Hosts end
// their loop on it without treating it as a failure.
var ErrQuit = errors.New("scrollcam: quit requested")

// recenterDuration is how long KeyRecenter takes to tween back to the player.
const recenterDuration = 0.4

// Scene owns the entities, the player, and the camera, and drives the
// per-frame update and draw. Devices are passed in: buffers at construction,
// input to Update, and the output surface to Draw.
type Scene struct {
	cfg    Config
	camera *Camera
	player *Player
	ground *Entity

	entities []*Entity
	lists    []DrawList

	// ClearColor fills the output and the zoom buffer before composing.
	ClearColor Color

	buffers BufferFactory
	buffer  Buffer

	collectBuf []*Entity
	cmds       []drawCmd
	sortBuf    []drawCmd

	sink   EventSink
	logger *slog.Logger
	debug  bool
	frame  uint64

	runner          *TestRunner
	screenshotQueue []string

	prevRecenter bool
	prevCycle    bool
	lastZoom     float64
}

// NewScene creates an empty scene for cfg. buffers may be nil, in which case
// the scene composes straight onto the output even when cfg.Zoom is set.
func NewScene(cfg Config, buffers BufferFactory) *Scene {
	cam := NewCamera(cfg)
	return &Scene{
		cfg:        cfg,
		camera:     cam,
		ClearColor: cfg.clearColor(),
		buffers:    buffers,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		debug:      cfg.Debug,
		lastZoom:   cam.Zoom,
	}
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.camera }

// Config returns the config currently in effect.
func (s *Scene) Config() Config { return s.cfg }

// Player returns the player, or nil before SetPlayer.
func (s *Scene) Player() *Player { return s.player }

// Frame returns the number of completed updates.
func (s *Scene) Frame() uint64 { return s.frame }

// SetPlayer installs the player and adds its entity to the draw set.
func (s *Scene) SetPlayer(p *Player) {
	s.player = p
	if p != nil {
		s.AddEntity(p.Entity)
	}
}

// SetGround sets the ground plane, drawn before every entity and never
// depth sorted.
func (s *Scene) SetGround(e *Entity) { s.ground = e }

// AddEntity appends an entity. Insertion order breaks depth ties.
func (s *Scene) AddEntity(e *Entity) {
	if e != nil {
		s.entities = append(s.entities, e)
	}
}

// Entities returns the scene-owned entities in insertion order. The returned
// slice MUST NOT be mutated.
func (s *Scene) Entities() []*Entity { return s.entities }

// AddDrawList registers an extra entity source, sorted with the scene's own
// entities every frame.
func (s *Scene) AddDrawList(dl DrawList) {
	if dl != nil {
		s.lists = append(s.lists, dl)
	}
}

// SetEventSink sets the optional event sink.
func (s *Scene) SetEventSink(sink EventSink) { s.sink = sink }

// SetLogger replaces the scene logger. A nil logger discards output.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = l.With("component", "scrollcam")
}

// SetDebugMode enables per-frame timing logs at debug level.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool { return s.debug }

// ApplyConfig swaps in a new config without rebuilding the scene. Entities
// stay where they are; the camera picks up the new speeds and borders. The
// pan mode and debug mode only change when cfg changes them, so a mode picked
// at runtime survives a reload that leaves them alone.
func (s *Scene) ApplyConfig(cfg Config) {
	prev := s.cfg
	if cfg.InternalSize != prev.InternalSize {
		s.buffer = nil
	}
	mode := s.camera.Mode
	s.cfg = cfg
	s.camera.Configure(cfg)
	if cfg.Mode == prev.Mode {
		s.camera.SetMode(mode)
	}
	if s.player != nil {
		s.player.Speed = cfg.PlayerSpeed
	}
	s.ClearColor = cfg.clearColor()
	if cfg.Debug != prev.Debug {
		s.debug = cfg.Debug
	}
	s.logger.Info("config applied", "mode", s.camera.Mode, "zoom", cfg.Zoom)
	s.emit(EventConfigReload)
}

// Recenter tweens the view back onto the player and the zoom back to 1.
func (s *Scene) Recenter() {
	if s.player == nil {
		return
	}
	s.camera.ScrollTo(s.player.Center(), recenterDuration, ease.OutQuad)
	s.camera.ZoomTo(1, recenterDuration, ease.OutQuad)
	s.emit(EventRecenter)
}

// Update runs one frame: sample input, move the player, update the camera.
// It returns ErrQuit when the user asked to quit.
func (s *Scene) Update(in Input) error {
	var pointer Pointer = in
	fi := SampleInput(in)

	// A running test script replaces device input; quitting stays live.
	if s.runner != nil && !s.runner.Done() {
		s.runner.step(s)
		quit := fi.Quit
		fi = SampleInput(s.runner.input)
		fi.Quit = fi.Quit || quit
		pointer = s.runner.input
		defer s.runner.input.EndFrame()
	}

	if fi.Quit {
		s.logger.Info("quit requested", "frame", s.frame)
		s.emit(EventQuit)
		return ErrQuit
	}

	if fi.CycleMode && !s.prevCycle {
		mode := s.camera.CycleMode()
		s.logger.Info("pan mode changed", "mode", mode)
		s.emit(EventModeChanged)
	}
	if fi.Recenter && !s.prevRecenter {
		s.Recenter()
	}
	s.prevCycle = fi.CycleMode
	s.prevRecenter = fi.Recenter

	var target Rect
	if s.player != nil {
		s.player.Update(fi)
		target = s.player.Bounds()
	}

	s.camera.ZoomWheel(fi.Scroll)
	s.camera.Update(target, fi, pointer, s.cfg.FrameDelta())
	if s.camera.Zoom != s.lastZoom {
		s.lastZoom = s.camera.Zoom
		s.emit(EventZoomChanged)
	}

	s.frame++
	return nil
}

// InternalOffset is where world-minus-offset coordinates land inside the
// zoom buffer. It centers the viewport in the buffer so zoom 1 matches the
// unbuffered path exactly.
func (s *Scene) InternalOffset() Vec2 {
	n := float64(s.cfg.InternalSize)
	return Vec2{n / 2, n / 2}.Sub(s.camera.HalfViewport())
}

// Draw composes the frame onto dst: clear, ground, then entities in depth
// order. With zoom enabled the composition goes through the off-screen
// buffer, which is then scaled by the camera zoom and centered on dst.
func (s *Scene) Draw(dst Surface) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	dst.Clear(s.ClearColor)
	s.collect()

	if s.debug {
		stats.collectTime = time.Since(t0)
		t0 = time.Now()
	}

	s.sortBuf = sortCommands(s.cmds, s.sortBuf)

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.entityCount = len(s.cmds)
		t0 = time.Now()
	}

	buf := s.ensureBuffer()
	if buf == nil {
		s.compose(dst, s.camera.Offset)
	} else {
		buf.Clear(s.ClearColor)
		s.compose(buf, s.camera.Offset.Sub(s.InternalOffset()))
		if z := s.camera.Zoom; z > 0 {
			half := s.camera.HalfViewport()
			side := float64(s.cfg.InternalSize) * z
			dst.BlitScaled(buf, half.X-side/2, half.Y-side/2, z)
		}
	}

	if s.debug {
		stats.composeTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// collect gathers scene entities and draw-list entities into s.cmds.
func (s *Scene) collect() {
	ents := append(s.collectBuf[:0], s.entities...)
	for _, dl := range s.lists {
		ents = dl.AppendEntities(ents)
	}
	s.collectBuf = ents

	s.cmds = s.cmds[:0]
	for i, e := range ents {
		s.cmds = append(s.cmds, drawCmd{ent: e, depth: e.Depth(), order: i})
	}
}

// compose blits the ground and the sorted entities with origin subtracted
// from every position.
func (s *Scene) compose(dst Surface, origin Vec2) {
	if s.ground != nil && s.ground.Tex != nil {
		p := s.ground.Pos.Sub(origin)
		dst.Blit(s.ground.Tex, p.X, p.Y)
	}
	for _, c := range s.cmds {
		if c.ent.Tex == nil {
			continue
		}
		p := c.ent.Pos.Sub(origin)
		dst.Blit(c.ent.Tex, p.X, p.Y)
	}
}

func (s *Scene) ensureBuffer() Buffer {
	if !s.cfg.Zoom || s.buffers == nil {
		return nil
	}
	if s.buffer == nil {
		s.buffer = s.buffers.NewBuffer(s.cfg.InternalSize, s.cfg.InternalSize)
	}
	return s.buffer
}

// DrawOrder returns the entities of the last Draw in painter's order.
func (s *Scene) DrawOrder() []*Entity {
	out := make([]*Entity, len(s.cmds))
	for i, c := range s.cmds {
		out[i] = c.ent
	}
	return out
}

// Screenshot queues a labeled screenshot. Hosts capture queued labels after
// the next Draw.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshotRequests returns and clears the queued screenshot labels.
func (s *Scene) TakeScreenshotRequests() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	out := s.screenshotQueue
	s.screenshotQueue = nil
	return out
}
