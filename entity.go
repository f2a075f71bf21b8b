package scrollcam

// EntityKind tags what an Entity represents. Rendering treats all kinds the
// same; the tag exists for lookups and debugging.
type EntityKind uint8

const (
	KindProp   EntityKind = iota // static decoration
	KindTree                     // tree placed at scene setup
	KindPlayer                   // the player-controlled sprite
)

func (k EntityKind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindPlayer:
		return "player"
	default:
		return "prop"
	}
}

// Entity is a positioned sprite. Pos is the top-left corner in world space.
type Entity struct {
	Kind EntityKind
	Name string
	Pos  Vec2
	Tex  Texture
	W, H float64
}

// NewEntity creates an entity whose size is taken from tex. A nil texture
// yields a zero-sized entity.
func NewEntity(kind EntityKind, name string, topLeft Vec2, tex Texture) *Entity {
	e := &Entity{Kind: kind, Name: name, Pos: topLeft, Tex: tex}
	if tex != nil {
		w, h := tex.Size()
		e.W, e.H = float64(w), float64(h)
	}
	return e
}

// Depth is the painter's-algorithm sort key: the entity's vertical center.
func (e *Entity) Depth() float64 {
	return e.Pos.Y + e.H/2
}

// Bounds returns the entity's world-space rectangle.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, Width: e.W, Height: e.H}
}

// Center returns the midpoint of Bounds.
func (e *Entity) Center() Vec2 {
	return e.Bounds().Center()
}

// SetCenter moves the entity so its midpoint sits at c.
func (e *Entity) SetCenter(c Vec2) {
	e.Pos = Vec2{c.X - e.W/2, c.Y - e.H/2}
}

// DefaultPlayerSpeed is the distance the player covers per frame.
const DefaultPlayerSpeed = 5.0

// Player moves its entity by a four-way direction read from input.
type Player struct {
	*Entity
	Direction Vec2
	Speed     float64
}

// NewPlayer creates a player entity centered on center.
func NewPlayer(center Vec2, tex Texture, speed float64) *Player {
	e := NewEntity(KindPlayer, "player", Vec2{}, tex)
	e.SetCenter(center)
	return &Player{Entity: e, Speed: speed}
}

// Update sets the direction from this frame's input and moves the player.
// The player is not clamped to any bounds.
func (p *Player) Update(in FrameInput) {
	p.Direction = in.Move
	p.Pos = p.Pos.Add(p.Direction.Scale(p.Speed))
}
