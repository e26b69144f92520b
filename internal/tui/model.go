package tui

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wordtiles/internal/drag"
	"github.com/csheth/wordtiles/internal/words"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Words       *words.Collection
	ItemSpacing int
	LineSpacing int
	// GhostLines is the number of underlined lines reserved in the sentence
	// area even when it holds fewer words.
	GhostLines int
	ShowHelp   bool
	Logger     *log.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Words == nil {
		config.Words = words.New(nil)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, "", 0)
	}
	if config.LineSpacing < minLineSpacing {
		config.LineSpacing = minLineSpacing
	}
	config.Words.SetLogger(config.Logger)
	controller := drag.NewController(config.Words)
	controller.SetLogger(config.Logger)

	h := help.New()
	h.ShowAll = config.ShowHelp

	return &model{
		config:      config,
		words:       config.Words,
		drag:        controller,
		keys:        newKeyMap(),
		help:        h,
		layout:      newPageLayout(),
		infoMessage: "Press and drag a word with the mouse.",
	}
}

type pointer struct {
	x, y int
	set  bool
}

type model struct {
	config Config
	words  *words.Collection
	drag   *drag.Controller
	keys   keyMap
	help   help.Model
	layout pageLayout

	pointer     pointer
	lastTarget  drag.Target
	infoMessage string
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		// An in-flight drag is left alone; the controller notices the item
		// moved and drops the stale session on the next pointer event.
		m.words.Reset()
		m.infoMessage = "Words reset."
		m.config.Logger.Printf("[tui] reset")
	case key.Matches(msg, m.keys.Cancel):
		if m.drag.Session().Active() {
			m.endDrag()
			m.infoMessage = "Drag canceled."
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointer = pointer{x: msg.X, y: msg.Y, set: true}
	target := m.computeFrame().targetAt(msg.X, msg.Y)
	active := m.drag.Session().Active()

	switch msg.Type {
	case tea.MouseLeft:
		if !active {
			m.beginDrag(target)
			return m, nil
		}
		// Some terminals report held-button motion as repeated presses.
		m.enter(target)
	case tea.MouseMotion:
		if active {
			m.enter(target)
		}
	case tea.MouseRelease:
		if active {
			m.drop(target)
		}
	}
	return m, nil
}

func (m *model) beginDrag(target drag.Target) {
	if target.ItemID == "" {
		return
	}
	if !m.drag.Begin(target.ItemID) {
		return
	}
	m.lastTarget = target
	m.infoMessage = fmt.Sprintf("Dragging %q", m.title(target.ItemID))
}

// enter forwards a drag-enter only when the pointer reaches a new target, so
// a pointer resting on one tile does not keep reordering.
func (m *model) enter(target drag.Target) {
	if target == m.lastTarget {
		return
	}
	m.lastTarget = target
	id := m.drag.Session().ItemID
	outcome := m.drag.Enter(target)
	m.report(outcome, id)
	if !m.drag.Session().Active() {
		m.endDrag()
	}
}

func (m *model) drop(target drag.Target) {
	id := m.drag.Session().ItemID
	outcome := m.drag.Drop(target)
	m.endDrag()
	if outcome == drag.OutcomeNone || outcome == drag.OutcomeCleared {
		if target.Kind == drag.TargetOutside {
			m.infoMessage = "Drag canceled."
		} else {
			m.infoMessage = fmt.Sprintf("Dropped %q", m.title(id))
		}
		return
	}
	m.report(outcome, id)
}

// endDrag is reached from every exit path: drop, drop outside and cancel.
func (m *model) endDrag() {
	m.drag.End()
	m.lastTarget = drag.Target{}
}

func (m *model) report(outcome drag.Outcome, id string) {
	title := m.title(id)
	switch outcome {
	case drag.OutcomePromoted:
		m.infoMessage = fmt.Sprintf("Added %q to the sentence", title)
	case drag.OutcomeDemoted:
		m.infoMessage = fmt.Sprintf("Returned %q to the word bank", title)
	case drag.OutcomeReordered:
		m.infoMessage = fmt.Sprintf("Moved %q", title)
	default:
		return
	}
	m.config.Logger.Printf("[tui] %s %s", outcome, id)
}

func (m *model) title(id string) string {
	item, ok := m.words.Item(id)
	if !ok {
		return "word"
	}
	return item.Title
}
