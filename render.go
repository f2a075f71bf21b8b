package scrollcam

// Texture is a pre-loaded image owned by a host backend.
type Texture interface {
	Size() (w, h int)
}

// Surface is a render sink. Hosts implement it over their native image or
// screen type.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c Color)
	// Blit draws tex with its top-left corner at (x, y).
	Blit(tex Texture, x, y float64)
	// BlitScaled draws tex uniformly scaled by scale with its top-left
	// corner at (x, y).
	BlitScaled(tex Texture, x, y, scale float64)
}

// Buffer is an off-screen surface with an alpha channel that can itself be
// blitted.
type Buffer interface {
	Surface
	Texture
}

// BufferFactory allocates off-screen buffers.
type BufferFactory interface {
	NewBuffer(w, h int) Buffer
}

// DrawList supplies extra entities to a Scene each frame. They are depth
// sorted together with the scene's own entities.
type DrawList interface {
	AppendEntities(dst []*Entity) []*Entity
}

// drawCmd is a single blit emitted during collection.
type drawCmd struct {
	ent   *Entity
	depth float64
	order int // insertion order, breaks depth ties
}

// cmdLessOrEqual orders commands by depth, then insertion order.
func cmdLessOrEqual(a, b drawCmd) bool {
	if a.depth != b.depth {
		return a.depth < b.depth
	}
	return a.order <= b.order
}

// sortCommands sorts cmds in-place using buf as scratch space and returns
// the (possibly grown) scratch buffer. Bottom-up merge sort: stable, and zero
// allocations once buf reaches the high-water mark.
func sortCommands(cmds, buf []drawCmd) []drawCmd {
	n := len(cmds)
	if n <= 1 {
		return buf
	}
	if cap(buf) < n {
		buf = make([]drawCmd, n)
	}
	buf = buf[:n]

	a := cmds
	b := buf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(cmds, buf)
	}
	return buf
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawCmd, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if cmdLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// DepthOrder returns entities in painter's order: ascending depth, ties kept
// in their given order.
func DepthOrder(ents []*Entity) []*Entity {
	cmds := make([]drawCmd, len(ents))
	for i, e := range ents {
		cmds[i] = drawCmd{ent: e, depth: e.Depth(), order: i}
	}
	sortCommands(cmds, nil)
	out := make([]*Entity, len(cmds))
	for i, c := range cmds {
		out[i] = c.ent
	}
	return out
}
