// ABOUTME: View rendering for the demo (converts model state to terminal output)
// ABOUTME: Implements the Elm architecture View function
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.theme.HeaderStyle().
		Width(m.width).
		Render(fmt.Sprintf("Expandable text area (%s)", m.textArea.ID()))

	// Fill the remaining rows so the status bar stays at the bottom.
	body := lipgloss.NewStyle().
		Height(maxInt(m.height-chromeHeight, 1)).
		Render(m.textArea.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusBar.View())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
