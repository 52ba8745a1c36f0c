// ABOUTME: StatusBar component for displaying the text area's mode and limits
// ABOUTME: Shows compact/expanded state, line counts and keyboard shortcuts
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harper/expandable-textarea/internal/expand"
	"github.com/harper/expandable-textarea/internal/tui/theme"
)

// AreaState is the part of the text area the status bar reports on.
type AreaState struct {
	Mode          expand.Mode
	FixedHeight   bool
	Rows          int
	ExpandedLines int
	Length        int
	MaxCharacters int
}

type StatusBar struct {
	width int
	theme theme.Theme
	state AreaState
}

func NewStatusBar(width int, t theme.Theme) *StatusBar {
	return &StatusBar{
		width: width,
		theme: t,
		state: AreaState{Mode: expand.Compact, FixedHeight: true, MaxCharacters: expand.Unbounded},
	}
}

func (s *StatusBar) SetState(state AreaState) {
	s.state = state
}

// StateOf captures what the status bar shows from a text area.
func StateOf(ea *ExpandableTextArea) AreaState {
	mode := expand.Compact
	if ea.IsExpandable() {
		mode = expand.Expanded
	}
	return AreaState{
		Mode:          mode,
		FixedHeight:   ea.IsFixedHeight(),
		Rows:          ea.Rows(),
		ExpandedLines: ea.ExpandedLineCount(),
		Length:        expand.Length(ea.GetValue()),
		MaxCharacters: ea.MaxCharacters(),
	}
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) View() string {
	var modePart string
	switch s.state.Mode {
	case expand.Expanded:
		modePart = "[▼ Expanded]"
	default:
		modePart = "[▶ Compact]"
	}

	heightPart := "auto"
	if s.state.FixedHeight {
		heightPart = "fixed"
	}

	linesPart := fmt.Sprintf("%d/%d lines", s.state.Rows, s.state.ExpandedLines)

	var limitPart string
	if s.state.MaxCharacters == expand.Unbounded {
		limitPart = fmt.Sprintf("%d chars", s.state.Length)
	} else {
		limitPart = fmt.Sprintf("%d/%d chars", s.state.Length, s.state.MaxCharacters)
	}

	shortcuts := "^E: Expand, ^F: Fixed, ^↑/^↓: Lines, ^C: Quit"

	leftContent := fmt.Sprintf("%s %s, %s, %s", modePart, heightPart, linesPart, limitPart)

	// Right-align shortcuts by visible width
	contentWidth := lipgloss.Width(leftContent) + lipgloss.Width(shortcuts) + 3 // 3 for separator " | "
	padding := s.width - contentWidth - 4                                      // 4 for the style padding
	if padding < 1 {
		padding = 1
	}

	spacer := strings.Repeat(" ", padding)
	fullContent := fmt.Sprintf("%s%s| %s", leftContent, spacer, shortcuts)

	return s.theme.StatusBarStyle().
		Width(maxInt(s.width-2, 1)).
		Render(fullContent)
}
