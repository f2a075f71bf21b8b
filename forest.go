package scrollcam

import (
	"fmt"
	"math/rand/v2"
)

// Sprites are the pre-loaded textures of the forest scene.
type Sprites struct {
	Ground Texture
	Tree   Texture
	Player Texture
}

// NewForest builds the demo scene: ground at the world origin, the player
// centered in the viewport, and cfg.Trees trees with their top-left corners
// drawn uniformly from [TreeMin, TreeMax] on both axes.
func NewForest(cfg Config, buffers BufferFactory, sprites Sprites) *Scene {
	s := NewScene(cfg, buffers)
	s.SetGround(NewEntity(KindProp, "ground", Vec2{}, sprites.Ground))

	center := Vec2{float64(cfg.ViewportWidth) / 2, float64(cfg.ViewportHeight) / 2}
	s.SetPlayer(NewPlayer(center, sprites.Player, cfg.PlayerSpeed))

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	span := cfg.TreeMax - cfg.TreeMin + 1
	for i := range cfg.Trees {
		x := cfg.TreeMin + rng.IntN(span)
		y := cfg.TreeMin + rng.IntN(span)
		s.AddEntity(NewEntity(KindTree, fmt.Sprintf("tree-%d", i), Vec2{float64(x), float64(y)}, sprites.Tree))
	}
	return s
}
