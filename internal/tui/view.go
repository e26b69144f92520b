package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

func (m *model) View() string {
	f := m.computeFrame()
	board := m.renderBoard(f)
	return joinNonEmpty([]string{board, m.statusView(), m.helpView()})
}

func (m *model) renderBoard(f frame) string {
	c := newCanvas(f.width, f.height)
	c.text(0, 0, appTitle, &titleStyle)
	c.text(len(appTitle)+2, 0, taglineFor(f.width-len(appTitle)-2), &taglineStyle)
	c.text(0, selectedAreaTop-1, selectedHeader, &sectionHeaderStyle)
	c.text(0, f.available.top-1, availableHeader, &sectionHeaderStyle)

	draggingID := m.drag.Session().ItemID

	// Underlines go first so the tiles overlay them.
	for _, bar := range f.selected.bars {
		y := f.selected.top + int(math.Floor(bar.Y))
		c.hline(areaPadding, y, int(bar.Width), underlineRune, &underlineStyle)
	}
	m.paintArea(c, f.selected, &selectedTileStyle, draggingID)
	if len(f.selected.items) == 0 {
		c.text(areaPadding, f.selected.top, selectedEmptyHint, &helperStyle)
	}

	m.paintArea(c, f.available, &tileStyle, draggingID)
	if len(f.available.items) == 0 {
		c.text(areaPadding, f.available.top, availableEmptyHint, &helperStyle)
	}

	if draggingID != "" && m.pointer.set {
		label := tileLabel(m.title(draggingID), m.layout.containerWidth)
		c.text(m.pointer.x+1, m.pointer.y, label, &previewTileStyle)
	}
	return c.String()
}

func (m *model) paintArea(c *canvas, a area, style *lipgloss.Style, draggingID string) {
	for _, rect := range a.rects {
		s := style
		if a.items[rect.Index].ID == draggingID {
			s = &draggingTileStyle
		}
		x := areaPadding + int(math.Round(rect.X))
		y := a.top + int(math.Round(rect.Y))
		c.text(x, y, a.labels[rect.Index], s)
	}
}

func taglineFor(width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(heroTagline) > width {
		return truncate.StringWithTail(heroTagline, uint(width), ellipsis)
	}
	return heroTagline
}

func (m *model) statusView() string {
	counts := []string{
		"sentence " + strconv.Itoa(len(m.words.Selected())),
		"bank " + strconv.Itoa(len(m.words.Available())),
	}
	if s := m.drag.Session(); s.Active() {
		counts = append(counts, "dragging from "+s.Source.String())
	}
	status := statusBarStyle.Render(strings.Join(counts, "  •  "))
	if m.infoMessage == "" {
		return status
	}
	width := m.layout.windowWidth
	if width <= 0 {
		width = 80
	}
	info := helperStyle.Render(wordwrap.String(m.infoMessage, width))
	return status + "\n" + info
}

func (m *model) helpView() string {
	return m.help.View(m.keys)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
