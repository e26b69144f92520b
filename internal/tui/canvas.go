package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	style *lipgloss.Style
	// wide marks the trailing half of a double-width rune.
	wide bool
}

// canvas is a fixed grid of styled cells that tiles, underlines and labels
// are painted onto in z-order.
type canvas struct {
	width  int
	height int
	grid   [][]cell
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}
	return &canvas{width: width, height: height, grid: grid}
}

// text paints s starting at (x, y), clipping at the right edge.
func (c *canvas) text(x, y int, s string, style *lipgloss.Style) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			return
		}
		if x >= 0 {
			c.clearWide(y, x, w)
			c.grid[y][x] = cell{r: r, style: style}
			if w == 2 {
				c.grid[y][x+1] = cell{style: style, wide: true}
			}
		}
		x += w
	}
}

// clearWide blanks the halves of any double-width rune that a write of
// width w at (x, y) would split.
func (c *canvas) clearWide(y, x, w int) {
	row := c.grid[y]
	if row[x].wide && x > 0 {
		row[x-1] = cell{}
	}
	if end := x + w; end < c.width && row[end].wide {
		row[end] = cell{}
	}
}

func (c *canvas) hline(x, y, width int, r rune, style *lipgloss.Style) {
	if width <= 0 {
		return
	}
	c.text(x, y, strings.Repeat(string(r), width), style)
}

// String renders the grid row by row, batching runs that share a style.
func (c *canvas) String() string {
	rows := make([]string, c.height)
	for y, row := range c.grid {
		var b strings.Builder
		var run strings.Builder
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(current.Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.wide {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			if cl.r == 0 {
				run.WriteRune(' ')
				continue
			}
			run.WriteRune(cl.r)
		}
		flush()
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n")
}
