// ABOUTME: Core Bubbletea model for the expandable text area demo
// ABOUTME: Hosts one ExpandableTextArea with a header and a status bar
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/expandable-textarea/internal/config"
	"github.com/harper/expandable-textarea/internal/tui/components"
	"github.com/harper/expandable-textarea/internal/tui/theme"
)

// chromeHeight is the header plus the status bar.
const chromeHeight = 2

type Model struct {
	config *config.Config
	theme  theme.Theme
	width  int
	height int

	// Components
	textArea  *components.ExpandableTextArea
	statusBar *components.StatusBar
}

func NewModel(cfg *config.Config) Model {
	th := theme.GetTheme(cfg.UI.Theme)

	// Initialize with default dimensions (resized on first WindowSizeMsg)
	textArea := components.NewExpandableTextArea(cfg.TextArea.Text, cfg.TextArea.ToExpand(), 0, 4, th)
	if !cfg.TextArea.Editable {
		textArea.SetEditable(false)
	}
	textArea.Focus()

	statusBar := components.NewStatusBar(80, th)
	statusBar.SetState(components.StateOf(textArea))

	return Model{
		config:    cfg,
		theme:     th,
		textArea:  textArea,
		statusBar: statusBar,
	}
}

func (m Model) Init() tea.Cmd {
	return m.textArea.Init()
}
