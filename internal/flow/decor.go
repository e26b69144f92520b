package flow

// Bar is a horizontal underline drawn beneath a wrapped line.
type Bar struct {
	Y         float64
	Width     float64
	Thickness float64
}

// Underlines returns one bar per line, centred in the gap below it and
// spanning the container width.
func Underlines(lines []Line, opts Options, thickness float64) []Bar {
	bars := make([]Bar, 0, len(lines))
	for _, line := range lines {
		bars = append(bars, Bar{
			Y:         line.BottomY + opts.LineSpacing/2 - thickness/2,
			Width:     opts.ContainerWidth,
			Thickness: thickness,
		})
	}
	return bars
}

// Rect is an item's placed bounding box.
type Rect struct {
	Index int
	X     float64
	Y     float64
	W     float64
	H     float64
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bounds pairs each placed position with the size of its item.
func Bounds(res Result, items []Item) []Rect {
	n := len(items)
	if len(res.Positions) < n {
		n = len(res.Positions)
	}
	rects := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		pos := res.Positions[i]
		rects = append(rects, Rect{
			Index: items[i].Index,
			X:     pos.X,
			Y:     pos.Y,
			W:     items[i].Size.Width,
			H:     items[i].Size.Height,
		})
	}
	return rects
}

// HitTest returns the index of the item under (x, y).
func HitTest(rects []Rect, x, y float64) (int, bool) {
	for _, r := range rects {
		if r.Contains(x, y) {
			return r.Index, true
		}
	}
	return -1, false
}
