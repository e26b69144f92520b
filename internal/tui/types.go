package tui

import "github.com/charmbracelet/lipgloss"

const appTitle = "Word Tiles"

const heroTagline = "Drag words into the sentence. Drag them back to the bank to remove them."

const (
	minContainerWidth = 20
	areaPadding       = 2
	tileHeight        = 1
	underlineWidth    = 1
	underlineRune     = '─'
	ellipsis          = "…"

	// Underlines need a row of their own between tile rows.
	minLineSpacing = 1
)

// Rows above the selected area: title, blank, section header.
const selectedAreaTop = 3

const (
	selectedHeader     = "Your sentence"
	availableHeader    = "Word bank"
	selectedEmptyHint  = "Drag words here to build a sentence."
	availableEmptyHint = "Every word is in the sentence."
)

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	taglineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb347")).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)

	tileStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166"))
	selectedTileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	draggingTileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#56526e")).Background(lipgloss.Color("#2a2a3a"))
	previewTileStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#bde0fe"))
	underlineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#56526e"))
)
