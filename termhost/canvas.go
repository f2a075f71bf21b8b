package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/scrollcam"
)

type cell struct {
	r    rune
	fg   tcell.Color
	bg   tcell.Color
	cont bool // right half of a wide rune
}

// Canvas is a pixel-addressed surface backed by terminal cells. Each cell
// covers a CellW×CellH block of pixels; positions are floored to cells.
type Canvas struct {
	w, h         int
	cols, rows   int
	cellW, cellH float64
	cells        []cell
}

// NewCanvas creates a canvas w×h pixels in size with the given cell size.
func NewCanvas(w, h, cellW, cellH int) *Canvas {
	cellW, cellH = max(cellW, 1), max(cellH, 1)
	cols := (w + cellW - 1) / cellW
	rows := (h + cellH - 1) / cellH
	c := &Canvas{
		w: w, h: h,
		cols: cols, rows: rows,
		cellW: float64(cellW), cellH: float64(cellH),
		cells: make([]cell, cols*rows),
	}
	c.Clear(scrollcam.ColorWhite)
	return c
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Cells returns the canvas size in cells.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

// Clear fills every cell with a blank in color col.
func (c *Canvas) Clear(col scrollcam.Color) {
	bg := tcellColor(col)
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: tcell.ColorDefault, bg: bg}
	}
}

// Blit draws a Glyph or another Canvas with its top-left at (x, y).
func (c *Canvas) Blit(tex scrollcam.Texture, x, y float64) {
	c.BlitScaled(tex, x, y, 1)
}

// BlitScaled draws tex scaled by scale with its top-left at (x, y). Canvas
// sources are resampled per destination cell.
func (c *Canvas) BlitScaled(tex scrollcam.Texture, x, y, scale float64) {
	if scale <= 0 {
		return
	}
	switch t := tex.(type) {
	case *Glyph:
		c.drawGlyph(t, x, y, scale)
	case *Canvas:
		c.drawCanvas(t, x, y, scale)
	}
}

// At returns the rune and colors of cell (col, row).
func (c *Canvas) At(col, row int) (r rune, fg, bg tcell.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, tcell.ColorDefault, tcell.ColorDefault
	}
	ce := c.cells[row*c.cols+col]
	return ce.r, ce.fg, ce.bg
}

func (c *Canvas) drawGlyph(g *Glyph, x, y, scale float64) {
	w := float64(g.W) * scale
	h := float64(g.H) * scale

	if g.Fill {
		c0, r0 := c.cellOf(x, y)
		c1, r1 := c.cellOf(x+w-1, y+h-1)
		c0, r0 = max(c0, 0), max(r0, 0)
		c1, r1 = min(c1, c.cols-1), min(r1, c.rows-1)
		fill := g.FillRune
		if fill == 0 {
			fill = ' '
		}
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				c.cells[row*c.cols+col] = cell{r: fill, fg: g.Fg, bg: g.Bg}
			}
		}
	}
	if g.Rune != 0 {
		col, row := c.cellOf(x+w/2, y+h/2)
		c.put(col, row, g.Rune, g.Fg)
	}
}

// put writes r at (col, row) keeping the cell background. Wide runes take
// the next cell too.
func (c *Canvas) put(col, row int, r rune, fg tcell.Color) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	i := row*c.cols + col
	if c.cells[i].cont && col > 0 {
		c.cells[i-1].r = ' '
	}
	c.cells[i].r = r
	c.cells[i].fg = fg
	c.cells[i].cont = false
	if runewidth.RuneWidth(r) == 2 {
		if col+1 < c.cols {
			c.cells[i+1].r = 0
			c.cells[i+1].cont = true
		} else {
			c.cells[i].r = ' '
		}
	}
}

func (c *Canvas) drawCanvas(src *Canvas, x, y, scale float64) {
	for row := 0; row < c.rows; row++ {
		py := ((float64(row)+0.5)*c.cellH - y) / scale
		sr := int(math.Floor(py / src.cellH))
		if sr < 0 || sr >= src.rows {
			continue
		}
		for col := 0; col < c.cols; col++ {
			px := ((float64(col)+0.5)*c.cellW - x) / scale
			sc := int(math.Floor(px / src.cellW))
			if sc < 0 || sc >= src.cols {
				continue
			}
			ce := src.cells[sr*src.cols+sc]
			if ce.cont {
				// The left half was not sampled into this cell; show a blank.
				ce = cell{r: ' ', fg: ce.fg, bg: ce.bg}
			}
			if runewidth.RuneWidth(ce.r) == 2 {
				if col+1 >= c.cols {
					ce.r = ' '
				} else {
					c.cells[row*c.cols+col] = ce
					c.cells[row*c.cols+col+1] = cell{cont: true, bg: ce.bg}
					col++
					continue
				}
			}
			c.cells[row*c.cols+col] = ce
		}
	}
}

func (c *Canvas) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

// flush copies the canvas onto screen at the top-left corner, clipped to
// the screen size.
func (c *Canvas) flush(screen tcell.Screen) {
	sw, sh := screen.Size()
	for row := 0; row < min(c.rows, sh); row++ {
		for col := 0; col < min(c.cols, sw); col++ {
			ce := c.cells[row*c.cols+col]
			if ce.cont {
				if col > 0 && runewidth.RuneWidth(c.cells[row*c.cols+col-1].r) == 2 {
					continue
				}
				ce.r = ' '
			}
			style := tcell.StyleDefault.Foreground(ce.fg).Background(ce.bg)
			screen.SetContent(col, row, ce.r, nil, style)
		}
	}
}

func tcellColor(c scrollcam.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// Glyph is a terminal texture: a pixel-sized footprint drawn as one rune at
// its center, optionally over a filled background.
type Glyph struct {
	W, H int
	Rune rune
	Fg   tcell.Color

	// Fill paints every covered cell with FillRune on Bg before the rune.
	Fill     bool
	FillRune rune
	Bg       tcell.Color
}

// Size returns the glyph footprint in pixels.
func (g *Glyph) Size() (int, int) { return g.W, g.H }

// Buffers allocates canvases for the zoom buffer.
type Buffers struct {
	CellW, CellH int
}

// NewBuffer allocates a w×h pixel canvas.
func (b Buffers) NewBuffer(w, h int) scrollcam.Buffer {
	return NewCanvas(w, h, b.CellW, b.CellH)
}
