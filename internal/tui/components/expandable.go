// ABOUTME: ExpandableTextArea component: a bubbles textarea that resizes itself
// ABOUTME: Switches between a compact read-only mirror and an expanded editor
package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/runeutil"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/expandable-textarea/internal/expand"
	"github.com/harper/expandable-textarea/internal/layout"
	"github.com/harper/expandable-textarea/internal/logger"
	"github.com/harper/expandable-textarea/internal/tui/theme"
)

// flushMsg runs work deferred until after the current render.
type flushMsg struct {
	id string
}

// ExpandableTextArea is a multi-line input that pins its height to a number
// of lines: the compact line count, or the measured content when expandable.
type ExpandableTextArea struct {
	width  int
	height int
	theme  theme.Theme

	textarea textarea.Model
	grid     *layout.Grid
	ctrl     *expand.Controller

	// State written by the controller through surface.
	mirror           string
	pinned           bool
	geometry         expand.Geometry
	editorVisible    bool
	indicatorVisible bool
	limitText        string
	editable         bool
	scrollBars       bool
	layoutRequested  bool

	focused bool
	shown   bool
	pending []func()
}

// NewExpandableTextArea creates the component. width and height are the
// space granted by the host; height only matters without fixed height.
func NewExpandableTextArea(text string, cfg expand.Config, width, height int, th theme.Theme) *ExpandableTextArea {
	ta := textarea.New()
	ta.Placeholder = "Type here..."
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0 // limit is enforced by the controller
	ta.MaxHeight = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	ea := &ExpandableTextArea{
		width:      width,
		height:     height,
		theme:      th,
		textarea:   ta,
		grid:       layout.NewGrid(),
		editable:   true,
		scrollBars: true,
	}
	ea.applyWidth()
	ea.ctrl = expand.NewController(canonicalText(text), cfg, ea.grid, surface{ea}, expand.WithScheduler(ea.schedule))
	return ea
}

// textSanitizer matches the sanitizer bubbles/textarea runs on every insertion.
var textSanitizer = runeutil.NewSanitizer()

// canonicalText is text as the textarea holds it: every line terminator
// becomes \n, tabs become four spaces and other control characters are
// dropped. Grid, controller, mirror and textarea all see this form.
func canonicalText(text string) string {
	return string(textSanitizer.Sanitize([]rune(expand.NormalizeLineTerminators(text))))
}

func contentWidth(width int) int {
	w := width - 2 // Account for padding
	if w < 1 {
		return 1
	}
	return w
}

// applyWidth re-wraps at the current width. Without a width there is no
// layout yet and measurements fall back to defaults.
func (ea *ExpandableTextArea) applyWidth() bool {
	if ea.width <= 0 {
		return ea.grid.SetWidth(0)
	}
	w := contentWidth(ea.width)
	ea.textarea.SetWidth(w)
	return ea.grid.SetWidth(w)
}

// ID identifies the component in log lines.
func (ea *ExpandableTextArea) ID() string {
	return ea.ctrl.ID()
}

// SetSize updates the space granted by the host. The first call counts as
// the component becoming visible.
func (ea *ExpandableTextArea) SetSize(width, height int) {
	ea.width = width
	ea.height = height
	if !ea.pinned {
		ea.textarea.SetHeight(maxInt(height, 1))
	}
	if ea.applyWidth() {
		ea.ctrl.WidthChanged()
	}
	if !ea.shown && width > 0 {
		ea.shown = true
		ea.ctrl.Shown()
	}
}

// SetValue replaces the content programmatically. Line terminators and tabs
// are normalized first. The returned command refreshes the limit label.
func (ea *ExpandableTextArea) SetValue(value string) tea.Cmd {
	ea.ctrl.SetText(canonicalText(value))
	return ea.flushCmd()
}

func (ea *ExpandableTextArea) GetValue() string {
	return ea.ctrl.Text()
}

func (ea *ExpandableTextArea) Clear() tea.Cmd {
	return ea.SetValue("")
}

func (ea *ExpandableTextArea) Focus() {
	ea.focused = true
	if ea.editorVisible {
		ea.textarea.Focus()
	}
}

func (ea *ExpandableTextArea) Blur() {
	ea.focused = false
	ea.textarea.Blur()
}

func (ea *ExpandableTextArea) Focused() bool { return ea.focused }

func (ea *ExpandableTextArea) IsExpandable() bool { return ea.ctrl.IsExpandable() }

func (ea *ExpandableTextArea) SetExpandable(expandable bool) {
	ea.ctrl.SetExpandable(expandable)
}

// ToggleExpandable flips between compact and expanded.
func (ea *ExpandableTextArea) ToggleExpandable() {
	ea.ctrl.SetExpandable(!ea.ctrl.IsExpandable())
}

func (ea *ExpandableTextArea) IsFixedHeight() bool { return ea.ctrl.IsFixedHeight() }

func (ea *ExpandableTextArea) SetFixedHeight(fixed bool) {
	ea.ctrl.SetFixedHeight(fixed)
}

func (ea *ExpandableTextArea) CompactLineCount() int { return ea.ctrl.CompactLineCount() }

func (ea *ExpandableTextArea) SetCompactLineCount(n int) {
	ea.ctrl.SetCompactLineCount(n)
}

func (ea *ExpandableTextArea) InitialLineCount() int { return ea.ctrl.InitialLineCount() }

func (ea *ExpandableTextArea) SetInitialLineCount(n int) {
	ea.ctrl.SetInitialLineCount(n)
}

func (ea *ExpandableTextArea) MaxCharacters() int { return ea.ctrl.MaxCharacters() }

func (ea *ExpandableTextArea) SetMaxCharacters(max int) tea.Cmd {
	ea.ctrl.SetMaxCharacters(max)
	return ea.flushCmd()
}

func (ea *ExpandableTextArea) CharacterThreshold() int { return ea.ctrl.CharacterThreshold() }

func (ea *ExpandableTextArea) SetCharacterThreshold(threshold int) {
	ea.ctrl.SetCharacterThreshold(threshold)
}

func (ea *ExpandableTextArea) LimitationText() string { return ea.ctrl.LimitationText() }

func (ea *ExpandableTextArea) SetLimitationText(text string) tea.Cmd {
	ea.ctrl.SetLimitationText(text)
	return ea.flushCmd()
}

func (ea *ExpandableTextArea) IsEditable() bool { return ea.ctrl.IsEditable() }

func (ea *ExpandableTextArea) SetEditable(editable bool) {
	ea.ctrl.SetEditable(editable)
}

// ExpandedLineCount is the measured number of visual lines.
func (ea *ExpandableTextArea) ExpandedLineCount() int { return ea.ctrl.ExpandedLineCount() }

// NoOfLines measures the content on demand.
func (ea *ExpandableTextArea) NoOfLines() int { return ea.ctrl.NoOfLines() }

// Rows is the number of text rows currently rendered.
func (ea *ExpandableTextArea) Rows() int {
	if ea.pinned {
		return ea.geometry.Rows
	}
	return maxInt(ea.height, 1)
}

// Height is the total number of terminal rows View produces.
func (ea *ExpandableTextArea) Height() int {
	h := ea.Rows()
	if ea.overflowing() {
		h++
	}
	if ea.indicatorVisible {
		h++
	}
	return h
}

func (ea *ExpandableTextArea) EditorVisible() bool { return ea.editorVisible }

func (ea *ExpandableTextArea) LimitIndicatorVisible() bool { return ea.indicatorVisible }

func (ea *ExpandableTextArea) LimitText() string { return ea.limitText }

// LimitExhausted reports whether the limit has been hit.
func (ea *ExpandableTextArea) LimitExhausted() bool { return ea.ctrl.Exhausted() }

// TakeLayoutRequest reports whether the component asked the host to lay out
// again since the last call.
func (ea *ExpandableTextArea) TakeLayoutRequest() bool {
	requested := ea.layoutRequested
	ea.layoutRequested = false
	return requested
}

// Init initializes the component (Bubbletea lifecycle)
func (ea *ExpandableTextArea) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the component (Bubbletea lifecycle)
func (ea *ExpandableTextArea) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flushMsg:
		if msg.id == ea.ctrl.ID() {
			ea.flush()
		}
		return ea, nil

	case tea.KeyMsg:
		// The compact mirror is not editable in place.
		if !ea.editorVisible {
			return ea, nil
		}
		if !ea.editable && !isNavigationKey(msg) {
			return ea, nil
		}
		before := ea.textarea.Value()
		var cmd tea.Cmd
		ea.textarea, cmd = ea.textarea.Update(msg)
		if after := ea.textarea.Value(); after != before {
			accepted := ea.ctrl.Edit(after)
			if accepted != after {
				logger.Debug("components[%s]: edit clipped to %d characters", ea.ID(), expand.Length(accepted))
			}
		}
		return ea, tea.Batch(cmd, ea.flushCmd())
	}

	var cmd tea.Cmd
	ea.textarea, cmd = ea.textarea.Update(msg)
	return ea, cmd
}

func isNavigationKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight,
		tea.KeyHome, tea.KeyEnd, tea.KeyPgUp, tea.KeyPgDown:
		return true
	}
	return false
}

func (ea *ExpandableTextArea) schedule(fn func()) {
	ea.pending = append(ea.pending, fn)
}

func (ea *ExpandableTextArea) flushCmd() tea.Cmd {
	if len(ea.pending) == 0 {
		return nil
	}
	id := ea.ctrl.ID()
	return func() tea.Msg {
		return flushMsg{id: id}
	}
}

func (ea *ExpandableTextArea) flush() {
	pending := ea.pending
	ea.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func (ea *ExpandableTextArea) overflowing() bool {
	return ea.scrollBars && ea.editorVisible && ea.grid.Rows() > ea.Rows()
}

// View renders the editor or the mirror, then the overflow hint and the limit
// indicator when they apply.
func (ea *ExpandableTextArea) View() string {
	rows := ea.Rows()
	var parts []string

	if ea.editorVisible {
		parts = append(parts, ea.theme.EditorStyle().
			Width(ea.width).
			Height(rows).
			Render(ea.textarea.View()))
	} else {
		parts = append(parts, ea.theme.MirrorStyle().
			Width(ea.width).
			Height(rows).
			MaxHeight(rows).
			Render(ea.mirror))
	}

	if ea.overflowing() {
		hidden := ea.grid.Rows() - rows
		parts = append(parts, ea.theme.DimStyle().
			Width(ea.width).
			Render(fmt.Sprintf("↓ %d more", hidden)))
	}

	if ea.indicatorVisible {
		style := ea.theme.LimitStyle()
		if ea.ctrl.Exhausted() {
			style = ea.theme.LimitExhaustedStyle()
		}
		parts = append(parts, style.Width(ea.width).Render(ea.limitText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// surface is the component as seen by the controller.
type surface struct {
	ea *ExpandableTextArea
}

func (s surface) SetText(text string) {
	if s.ea.textarea.Value() != text {
		s.ea.textarea.SetValue(text)
	}
	s.ea.grid.SetText(text)
}

func (s surface) SetMirrorText(text string) {
	s.ea.mirror = text
}

func (s surface) PinHeight(g expand.Geometry) {
	s.ea.pinned = true
	s.ea.geometry = g
	s.ea.textarea.SetHeight(maxInt(g.Rows, 1))
}

func (s surface) ReleaseHeight() {
	s.ea.pinned = false
	s.ea.textarea.SetHeight(maxInt(s.ea.height, 1))
}

func (s surface) ShowEditor(visible bool) {
	s.ea.editorVisible = visible
	if visible && s.ea.focused {
		s.ea.textarea.Focus()
	} else if !visible {
		s.ea.textarea.Blur()
	}
}

func (s surface) ShowLimitIndicator(visible bool) {
	s.ea.indicatorVisible = visible
}

func (s surface) SetLimitText(text string) {
	s.ea.limitText = text
}

func (s surface) SetEditable(editable bool) {
	s.ea.editable = editable
}

func (s surface) RequestLayout() {
	s.ea.layoutRequested = true
}

func (s surface) SuppressScrollBars() {
	s.ea.scrollBars = false
}
