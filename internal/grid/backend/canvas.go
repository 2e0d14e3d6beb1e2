package backend

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/neocrystal/internal/grid"
)

// Cell is one materialised grid cell.
type Cell struct {
	Rune  rune
	Color grid.Color
}

// Canvas is a headless backend that keeps the drawn grid in memory.
// Draws outside the canvas are clipped.
type Canvas struct {
	width, height int
	cells         [][]Cell
	x, y          int
	flushes       int
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.cells = make([][]Cell, height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, width)
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Cursor moves the draw position to cell (x, y).
func (c *Canvas) Cursor(x, y int) {
	c.x, c.y = x, y
}

// Span writes runes left to right from the cursor. Wide runes take two
// cells; the second holds a zero rune.
func (c *Canvas) Span(b []byte, color grid.Color) {
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		b = b[n:]
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		c.set(c.x, c.y, Cell{Rune: r, Color: color})
		for i := 1; i < w; i++ {
			c.set(c.x+i, c.y, Cell{Color: color})
		}
		c.x += w
	}
}

// Flush counts a completed frame; cells are already materialised.
func (c *Canvas) Flush() {
	c.flushes++
}

// Flushes returns how many times Flush was called.
func (c *Canvas) Flushes() int {
	return c.flushes
}

// At returns the cell at (x, y), or a zero cell outside the canvas.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{}
	}
	return c.cells[y][x]
}

// Row returns row y as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		if cell.Rune != 0 {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}

// String returns every row joined by newlines.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.cells[y][x] = cell
	}
}
