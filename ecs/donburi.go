package ecs

import (
	"fmt"
	"math/rand/v2"

	"github.com/phanxgames/scrollcam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// SceneEventType is the Donburi event type for scrollcam scene events.
var SceneEventType = events.NewEventType[scrollcam.SceneEvent]()

// SpriteData names a drawable and holds its texture.
type SpriteData struct {
	Name string
	Tex  scrollcam.Texture
}

// Position is the top-left world position of a drawable entity.
var Position = donburi.NewComponentType[math.Vec2]()

// Sprite is the texture of a drawable entity.
var Sprite = donburi.NewComponentType[SpriteData]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Scene events are published to SceneEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) scrollcam.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event scrollcam.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}

// ProcessHook returns a frame hook that delivers queued scene events to
// SceneEventType subscribers once per frame.
func ProcessHook(world donburi.World) scrollcam.FrameHook {
	return func(*scrollcam.Scene) error {
		SceneEventType.ProcessEvents(world)
		return nil
	}
}

// Spawn creates a drawable entity at pos.
func Spawn(world donburi.World, name string, pos math.Vec2, tex scrollcam.Texture) donburi.Entity {
	e := world.Create(Position, Sprite)
	entry := world.Entry(e)
	Position.SetValue(entry, pos)
	Sprite.SetValue(entry, SpriteData{Name: name, Tex: tex})
	return e
}

// Scatter spawns n drawables named name-0 .. name-(n-1) with their top-left
// corners drawn uniformly from area. The same seed gives the same layout.
func Scatter(world donburi.World, name string, tex scrollcam.Texture, n int, area scrollcam.Rect, seed uint64) []donburi.Entity {
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	out := make([]donburi.Entity, 0, n)
	for i := range n {
		pos := math.NewVec2(area.X+rng.Float64()*area.Width, area.Y+rng.Float64()*area.Height)
		out = append(out, Spawn(world, fmt.Sprintf("%s-%d", name, i), pos, tex))
	}
	return out
}

// drawList exposes Position+Sprite entities as scrollcam entities. Records
// are cached per Donburi entity and refreshed every frame; records of
// removed entities are dropped.
type drawList struct {
	world donburi.World
	query *donburi.Query
	cache map[donburi.Entity]*cachedEntity
	pass  uint64
}

type cachedEntity struct {
	ent  *scrollcam.Entity
	pass uint64
}

// NewDrawList returns a DrawList over world's drawable entities.
func NewDrawList(world donburi.World) scrollcam.DrawList {
	return &drawList{
		world: world,
		query: donburi.NewQuery(filter.Contains(Position, Sprite)),
		cache: make(map[donburi.Entity]*cachedEntity),
	}
}

func (d *drawList) AppendEntities(dst []*scrollcam.Entity) []*scrollcam.Entity {
	d.pass++
	d.query.Each(d.world, func(entry *donburi.Entry) {
		pos := Position.Get(entry)
		spr := Sprite.Get(entry)

		c, ok := d.cache[entry.Entity()]
		if !ok {
			c = &cachedEntity{ent: &scrollcam.Entity{Kind: scrollcam.KindProp}}
			d.cache[entry.Entity()] = c
		}
		c.pass = d.pass

		e := c.ent
		e.Name = spr.Name
		e.Pos = scrollcam.Vec2{X: pos.X, Y: pos.Y}
		e.Tex = spr.Tex
		e.W, e.H = 0, 0
		if spr.Tex != nil {
			w, h := spr.Tex.Size()
			e.W, e.H = float64(w), float64(h)
		}
		dst = append(dst, e)
	})
	for id, c := range d.cache {
		if c.pass != d.pass {
			delete(d.cache, id)
		}
	}
	return dst
}
