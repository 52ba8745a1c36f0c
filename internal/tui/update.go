// ABOUTME: Update logic for the demo (handles all messages and state transitions)
// ABOUTME: Implements the Elm architecture Update function
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/expandable-textarea/internal/logger"
	"github.com/harper/expandable-textarea/internal/tui/components"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateComponentSizes()
		m.refreshStatus()
		return m, nil

	case tea.KeyMsg:
		// Global shortcuts
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+e":
			m.textArea.ToggleExpandable()
			logger.Debug("tui: expandable=%v", m.textArea.IsExpandable())

		case "ctrl+f":
			m.textArea.SetFixedHeight(!m.textArea.IsFixedHeight())
			logger.Debug("tui: fixed height=%v", m.textArea.IsFixedHeight())

		case "ctrl+up":
			m.textArea.SetCompactLineCount(m.textArea.CompactLineCount() + 1)

		case "ctrl+down":
			m.textArea.SetCompactLineCount(m.textArea.CompactLineCount() - 1)

		default:
			_, cmd = m.textArea.Update(msg)
		}

	default:
		_, cmd = m.textArea.Update(msg)
	}

	if m.textArea.TakeLayoutRequest() {
		m.updateComponentSizes()
	}
	m.refreshStatus()
	return m, cmd
}

// updateComponentSizes hands the space left by the header and status bar to
// the text area.
func (m *Model) updateComponentSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	available := m.height - chromeHeight
	if available < 1 {
		available = 1
	}
	m.textArea.SetSize(m.width, available)
	m.statusBar.SetSize(m.width)
}

func (m *Model) refreshStatus() {
	m.statusBar.SetState(components.StateOf(m.textArea))
}
