// ABOUTME: Unit tests for the status bar component
// ABOUTME: Tests mode and limit rendering and responsive sizing
package components

import (
	"strings"
	"testing"

	"github.com/harper/expandable-textarea/internal/expand"
	"github.com/harper/expandable-textarea/internal/tui/theme"
	"github.com/stretchr/testify/assert"
)

func TestNewStatusBar(t *testing.T) {
	sb := NewStatusBar(80, theme.DefaultTheme)

	assert.NotNil(t, sb)
	assert.Equal(t, 80, sb.width)
	assert.Contains(t, sb.View(), "Compact")
}

func TestStatusBar_Mode(t *testing.T) {
	tests := []struct {
		name     string
		mode     expand.Mode
		expected string
	}{
		{name: "compact", mode: expand.Compact, expected: "▶ Compact"},
		{name: "expanded", mode: expand.Expanded, expected: "▼ Expanded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewStatusBar(120, theme.DefaultTheme)
			sb.SetState(AreaState{Mode: tt.mode, MaxCharacters: expand.Unbounded})

			assert.Contains(t, sb.View(), tt.expected)
		})
	}
}

func TestStatusBar_Limit(t *testing.T) {
	sb := NewStatusBar(120, theme.DefaultTheme)

	sb.SetState(AreaState{Length: 7, MaxCharacters: expand.Unbounded})
	assert.Contains(t, sb.View(), "7 chars")
	assert.NotContains(t, sb.View(), "7/")

	sb.SetState(AreaState{Length: 7, MaxCharacters: 20})
	assert.Contains(t, sb.View(), "7/20 chars")
}

func TestStatusBar_Height(t *testing.T) {
	sb := NewStatusBar(120, theme.DefaultTheme)

	sb.SetState(AreaState{FixedHeight: true, Rows: 2, ExpandedLines: 5, MaxCharacters: expand.Unbounded})
	view := sb.View()
	assert.Contains(t, view, "fixed")
	assert.Contains(t, view, "2/5 lines")

	sb.SetState(AreaState{FixedHeight: false, Rows: 4, ExpandedLines: 1, MaxCharacters: expand.Unbounded})
	assert.Contains(t, sb.View(), "auto")
}

func TestStatusBar_StateOf(t *testing.T) {
	cfg := expand.DefaultConfig()
	cfg.MaxCharacters = 30
	ea := NewExpandableTextArea("hello", cfg, 40, 5, theme.DefaultTheme)
	ea.SetSize(40, 5)

	state := StateOf(ea)

	assert.Equal(t, expand.Compact, state.Mode)
	assert.True(t, state.FixedHeight)
	assert.Equal(t, 2, state.Rows)
	assert.Equal(t, 1, state.ExpandedLines)
	assert.Equal(t, 5, state.Length)
	assert.Equal(t, 30, state.MaxCharacters)
}

func TestStatusBar_SetSize(t *testing.T) {
	sb := NewStatusBar(80, theme.DefaultTheme)
	sb.SetSize(120)

	assert.Equal(t, 120, sb.width)
	assert.NotEmpty(t, sb.View())
}

func TestStatusBar_Shortcuts(t *testing.T) {
	sb := NewStatusBar(120, theme.DefaultTheme)
	view := sb.View()

	assert.True(t, strings.Contains(view, "^E: Expand"))
	assert.Contains(t, view, "^C: Quit")
}
