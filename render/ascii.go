package render

import (
	"math"
	"strings"

	"github.com/grindlemire/axisflow"
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide.
const cellAspect = 0.5

// ASCII lays the container out under cs and sketches the arrangement on
// a character grid cols columns wide. The grid covers the container
// rect exactly, so escaping content is cut at the edge; a "!" in the
// top-right corner marks an overflowing pass.
func ASCII(c *axisflow.Container, cs axisflow.Constraints, cols int) string {
	size := c.Layout(cs)
	if cols < 2 {
		cols = 2
	}

	scale := 1.0
	if size.Width > 0 {
		scale = float64(cols) / size.Width
	}
	rows := int(math.Round(size.Height * scale * cellAspect))
	if rows < 2 {
		rows = 2
	}

	g := newGrid(cols, rows)
	g.frame(0, 0, cols, rows)
	sketchChildren(g, c, axisflow.Point{}, scale)
	if c.Overflow() {
		g.set(cols-1, 0, '!')
	}
	return g.String()
}

func sketchChildren(g *grid, c *axisflow.Container, origin axisflow.Point, scale float64) {
	for _, it := range c.Children() {
		at := origin.Add(it.Offset())
		sz := it.Size()
		x := int(math.Round(at.X * scale))
		y := int(math.Round(at.Y * scale * cellAspect))
		w := int(math.Round(sz.Width * scale))
		h := int(math.Round(sz.Height * scale * cellAspect))
		if w < 2 {
			w = 2
		}
		if h < 2 {
			h = 2
		}
		g.frame(x, y, w, h)

		if child, ok := it.(*axisflow.Container); ok {
			sketchChildren(g, child, at, scale)
			continue
		}
		if box, ok := it.(*axisflow.Box); ok {
			g.label(x, y, w, h, box.Label())
		}
	}
}

type grid struct {
	cols, rows int
	cells      [][]rune
}

func newGrid(cols, rows int) *grid {
	cells := make([][]rune, rows)
	for i := range cells {
		row := make([]rune, cols)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &grid{cols: cols, rows: rows, cells: cells}
}

// set writes one cell, ignoring writes outside the grid.
func (g *grid) set(x, y int, r rune) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	g.cells[y][x] = r
}

// frame draws a rectangle border from +, - and | characters.
func (g *grid) frame(x, y, w, h int) {
	if w < 1 || h < 1 {
		return
	}
	for i := x; i < x+w; i++ {
		g.set(i, y, '-')
		g.set(i, y+h-1, '-')
	}
	for j := y; j < y+h; j++ {
		g.set(x, j, '|')
		g.set(x+w-1, j, '|')
	}
	g.set(x, y, '+')
	g.set(x+w-1, y, '+')
	g.set(x, y+h-1, '+')
	g.set(x+w-1, y+h-1, '+')
}

// label centers s on the middle row of the rect, truncated to the
// interior width.
func (g *grid) label(x, y, w, h int, s string) {
	inner := w - 2
	if s == "" || inner < 1 {
		return
	}
	runes := []rune(s)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	cx := x + (w-len(runes))/2
	cy := y + h/2
	for i, r := range runes {
		g.set(cx+i, cy, r)
	}
}

func (g *grid) String() string {
	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String()
}
