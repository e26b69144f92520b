package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/wordtiles/internal/drag"
	"github.com/csheth/wordtiles/internal/flow"
	"github.com/csheth/wordtiles/internal/words"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	containerWidth int
}

func newPageLayout() pageLayout {
	return pageLayout{
		windowWidth:    80,
		windowHeight:   24,
		containerWidth: 80 - 2*areaPadding,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	inner := width - 2*areaPadding
	if inner < minContainerWidth {
		inner = minContainerWidth
	}
	l.containerWidth = inner
}

// area is one laid-out drop zone. Rects and bars are local to the area's
// top-left corner at (areaPadding, top).
type area struct {
	top    int
	height int
	items  []words.Item
	labels []string
	rects  []flow.Rect
	bars   []flow.Bar
}

func (a area) contains(y int) bool {
	return y >= a.top && y < a.top+a.height
}

// itemAt returns the ID of the tile under the screen cell (x, y).
func (a area) itemAt(x, y int) string {
	idx, ok := flow.HitTest(a.rects, float64(x-areaPadding), float64(y-a.top))
	if !ok || idx < 0 || idx >= len(a.items) {
		return ""
	}
	return a.items[idx].ID
}

type frame struct {
	width     int
	height    int
	selected  area
	available area
}

func (m *model) flowOptions() flow.Options {
	return flow.Options{
		ContainerWidth: float64(m.layout.containerWidth),
		ItemSpacing:    float64(m.config.ItemSpacing),
		LineSpacing:    float64(m.config.LineSpacing),
	}
}

// computeFrame lays out both areas for the current collection and window.
// It is recomputed for every render and every pointer event.
func (m *model) computeFrame() frame {
	opts := m.flowOptions()

	selected := m.layoutArea(m.words.Selected(), opts)
	ghost := flow.Ghost(m.config.GhostLines, flow.Size{Width: opts.ContainerWidth, Height: tileHeight}, opts)
	lines := mergeLines(ghost.Lines, selected.lines)
	selected.bars = flow.Underlines(lines, opts, underlineWidth)
	selected.height = max(selected.height, ceil(ghost.Size.Height))
	for _, bar := range selected.bars {
		selected.height = max(selected.height, int(math.Floor(bar.Y))+1)
	}
	selected.height = max(selected.height, tileHeight)
	selected.top = selectedAreaTop

	available := m.layoutArea(m.words.Available(), opts)
	available.height = max(available.height, tileHeight)
	// blank row and section header between the areas
	available.top = selected.top + selected.height + 2

	return frame{
		width:     m.layout.windowWidth,
		height:    available.top + available.height,
		selected:  selected.area,
		available: available.area,
	}
}

type laidOut struct {
	area
	lines []flow.Line
}

func (m *model) layoutArea(items []words.Item, opts flow.Options) laidOut {
	labels := make([]string, len(items))
	measured := make([]flow.Item, len(items))
	for i, item := range items {
		labels[i] = tileLabel(item.Title, m.layout.containerWidth)
		measured[i] = flow.Item{Index: i, Size: measureTile(labels[i])}
	}
	res := flow.Compute(measured, opts)
	return laidOut{
		area: area{
			height: ceil(res.Size.Height),
			items:  items,
			labels: labels,
			rects:  flow.Bounds(res, measured),
		},
		lines: res.Lines,
	}
}

// tileLabel pads a title into its tile face, shortening titles that could
// never fit the container.
func tileLabel(title string, containerWidth int) string {
	limit := containerWidth - 2
	if limit < 1 {
		limit = 1
	}
	if lipgloss.Width(title) > limit {
		title = truncate.StringWithTail(title, uint(limit), ellipsis)
	}
	return " " + title + " "
}

func measureTile(label string) flow.Size {
	rendered := tileStyle.Render(label)
	return flow.Size{
		Width:  float64(lipgloss.Width(rendered)),
		Height: float64(lipgloss.Height(rendered)),
	}
}

func mergeLines(base, extra []flow.Line) []flow.Line {
	out := append([]flow.Line(nil), base...)
	for _, line := range extra {
		dup := false
		for _, existing := range out {
			if existing.Same(line) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, line)
		}
	}
	return out
}

// targetAt hit-tests a screen cell against the two drop zones.
func (f frame) targetAt(x, y int) drag.Target {
	switch {
	case f.selected.contains(y):
		return drag.TopList(f.selected.itemAt(x, y))
	case f.available.contains(y):
		return drag.Background(f.available.itemAt(x, y))
	default:
		return drag.Outside()
	}
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}
