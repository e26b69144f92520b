// Package flow wraps fixed-size items left to right, top to bottom within a
// bounded width and tracks the geometry of every wrapped line.
package flow

import "math"

// LineTolerance is the distance under which two lines are considered equal.
const LineTolerance = 0.1

type Size struct {
	Width  float64
	Height float64
}

type Point struct {
	X float64
	Y float64
}

// Item is a measured tile. The engine only looks at its size.
type Item struct {
	Index int
	Size  Size
}

// Line describes one wrapped line: its bottom edge and its height.
type Line struct {
	BottomY float64
	Height  float64
}

// Same reports whether two lines coincide within LineTolerance.
func (l Line) Same(other Line) bool {
	return math.Abs(l.BottomY-other.BottomY) < LineTolerance &&
		math.Abs(l.Height-other.Height) < LineTolerance
}

type Options struct {
	ContainerWidth float64
	ItemSpacing    float64
	LineSpacing    float64
}

// Result is the output of one layout pass. Positions are indexed like the
// input items.
type Result struct {
	Size      Size
	Positions []Point
	Lines     []Line
}

// Compute lays items out in input order. It is a pure function of its
// arguments.
func Compute(items []Item, opts Options) Result {
	res := Result{Positions: make([]Point, 0, len(items))}
	var x, y, lineHeight, maxWidth float64
	for _, item := range items {
		w, h := item.Size.Width, item.Size.Height
		// x > 0 keeps an oversized item on its own line instead of wrapping forever.
		if x+w > opts.ContainerWidth && x > 0 {
			res.Lines = append(res.Lines, Line{BottomY: y + lineHeight, Height: lineHeight})
			x = 0
			y += lineHeight + opts.LineSpacing
			lineHeight = 0
		}
		res.Positions = append(res.Positions, Point{X: x, Y: y})
		x += w + opts.ItemSpacing
		lineHeight = math.Max(lineHeight, h)
		maxWidth = math.Max(maxWidth, x-opts.ItemSpacing)
	}
	if lineHeight > 0 {
		last := Line{BottomY: y + lineHeight, Height: lineHeight}
		if !containsLine(res.Lines, last) {
			res.Lines = append(res.Lines, last)
		}
	}
	res.Size = Size{Width: maxWidth, Height: y + lineHeight}
	return res
}

func containsLine(lines []Line, line Line) bool {
	for _, existing := range lines {
		if existing.Same(line) {
			return true
		}
	}
	return false
}

// Ghost lays out count placeholder items of the given size. It reserves
// vertical space and yields line positions before any real item is placed.
func Ghost(count int, size Size, opts Options) Result {
	if count <= 0 {
		return Result{Positions: []Point{}}
	}
	items := make([]Item, count)
	for i := range items {
		items[i] = Item{Index: i, Size: size}
	}
	return Compute(items, opts)
}
