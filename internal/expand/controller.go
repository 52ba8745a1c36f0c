// ABOUTME: State machine sequencing line counting, limiting and height resolution
// ABOUTME: Every text, width, visibility or mode change recomputes synchronously

package expand

import (
	"strings"

	"github.com/google/uuid"
	"github.com/harper/expandable-textarea/internal/errors"
	"github.com/harper/expandable-textarea/internal/logger"
)

// Controller owns the text and expansion state of one text area.
type Controller struct {
	id       string
	metrics  MetricsProvider
	surface  Surface
	schedule Scheduler
	counter  LineCounter

	cfg      Config
	limiter  Limiter
	text     string
	editable bool

	expandedLines int
	lineHeight    float64
	geometry      Geometry
	shown         bool
	indicator     bool
	// clipped is set when the last commit had to cut the proposed text.
	clipped bool

	busy bool
}

type Option func(*Controller)

// WithScheduler sets how the limit label update is deferred. The default runs
// it immediately.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.schedule = s
		}
	}
}

// WithLineCounter replaces the default counter, e.g. to recalibrate padding.
func WithLineCounter(lc LineCounter) Option {
	return func(c *Controller) {
		c.counter = lc
	}
}

func NewController(text string, cfg Config, metrics MetricsProvider, surface Surface, opts ...Option) *Controller {
	c := &Controller{
		id:            "eta_" + uuid.New().String()[:8],
		metrics:       metrics,
		surface:       surface,
		schedule:      runNow,
		counter:       NewLineCounter(),
		editable:      true,
		expandedLines: 1,
		lineHeight:    DefaultLineHeight,
	}
	for _, opt := range opts {
		opt(c)
	}

	norm, clamped := cfg.Normalize()
	for _, e := range clamped {
		logger.Debug("expand[%s]: %v", c.id, e)
	}
	c.cfg = norm
	c.limiter = Limiter{Max: norm.MaxCharacters, Threshold: norm.CharacterThreshold}

	c.text, c.clipped = c.limiter.Filter(text)
	c.surface.SetText(c.text)
	c.surface.SetMirrorText(mirrorText(c.text))
	c.surface.SetLimitText(c.limitLabel())
	c.measure()
	if c.cfg.FixedHeight {
		c.pin()
	} else {
		c.release()
	}
	c.updateIndicator()

	logger.Debug("expand[%s]: created mode=%s fixed=%t lines=%d", c.id, c.mode(), c.cfg.FixedHeight, c.expandedLines)
	return c
}

func (c *Controller) ID() string { return c.id }

func (c *Controller) Text() string { return c.text }

// SetText replaces the content programmatically. It passes through the same
// limit filter as user edits.
func (c *Controller) SetText(text string) {
	c.commit(text)
}

// Edit applies a user edit given as the proposed full text and returns the
// text actually committed.
func (c *Controller) Edit(proposed string) string {
	c.commit(proposed)
	return c.text
}

func (c *Controller) commit(proposed string) {
	if c.busy {
		return
	}
	accepted, truncated := c.limiter.Filter(proposed)
	c.clipped = truncated
	if truncated {
		logger.Debug("expand[%s]: edit clipped from %d to %d characters", c.id, Length(proposed), Length(accepted))
	}
	if accepted == c.text {
		if truncated {
			c.surface.SetText(accepted)
		}
		return
	}

	c.text = accepted
	c.surface.SetText(accepted)
	c.surface.SetMirrorText(mirrorText(accepted))
	c.updateIndicator()
	c.schedule(func() {
		c.surface.SetLimitText(c.limitLabel())
	})
	c.recompute()
}

// WidthChanged must be called after the host re-wrapped the text at a new
// width.
func (c *Controller) WidthChanged() {
	c.recompute()
}

// Shown must be called when the surface becomes visible. Only the first call
// has an effect: metrics exist from then on, so the pass is forced once.
func (c *Controller) Shown() {
	if c.shown {
		return
	}
	c.shown = true
	c.recompute()
	if c.cfg.FixedHeight {
		c.surface.SuppressScrollBars()
	}
}

// Refresh runs a full recomputation pass and returns the resulting geometry.
func (c *Controller) Refresh() Geometry {
	c.recompute()
	return c.geometry
}

func (c *Controller) recompute() {
	if c.busy {
		return
	}
	c.measure()
	if c.cfg.FixedHeight {
		c.pin()
	}
}

// measure is the only writer of expandedLines.
func (c *Controller) measure() {
	m := c.counter.Measure(c.text, c.metrics)
	if !m.Available {
		logger.Debug("expand[%s]: metrics unavailable, assuming %d line(s)", c.id, m.Lines)
	}
	c.expandedLines = m.Lines
	if m.LineHeight > 0 {
		c.lineHeight = m.LineHeight
	}
}

func (c *Controller) pin() {
	c.busy = true
	defer func() { c.busy = false }()

	c.geometry = ResolveHeight(c.mode(), c.expandedLines, c.lineHeight, Length(c.text), c.cfg)
	c.surface.PinHeight(c.geometry)
	c.surface.ShowEditor(c.geometry.EditorVisible)
	c.surface.RequestLayout()
	c.updateIndicator()
}

func (c *Controller) release() {
	c.busy = true
	defer func() { c.busy = false }()

	c.geometry = Geometry{Mode: c.mode(), EditorVisible: true}
	c.surface.ReleaseHeight()
	c.surface.ShowEditor(true)
	c.surface.RequestLayout()
	c.updateIndicator()
}

func (c *Controller) mode() Mode {
	if c.cfg.Expandable {
		return Expanded
	}
	return Compact
}

func (c *Controller) Mode() Mode { return c.mode() }

func (c *Controller) IsExpandable() bool { return c.cfg.Expandable }

// SetExpandable switches between compact and expanded. Without fixed height
// the surface already grows with its content and nothing else changes.
func (c *Controller) SetExpandable(expandable bool) {
	if c.cfg.Expandable == expandable {
		return
	}
	c.cfg.Expandable = expandable
	logger.Debug("expand[%s]: mode -> %s", c.id, c.mode())
	if !c.cfg.FixedHeight {
		return
	}
	c.recompute()
}

func (c *Controller) IsFixedHeight() bool { return c.cfg.FixedHeight }

func (c *Controller) SetFixedHeight(fixed bool) {
	if c.cfg.FixedHeight == fixed {
		return
	}
	c.cfg.FixedHeight = fixed
	if !fixed {
		c.release()
		return
	}
	c.recompute()
	if c.shown {
		c.surface.SuppressScrollBars()
	}
}

func (c *Controller) CompactLineCount() int { return c.cfg.CompactLineCount }

func (c *Controller) SetCompactLineCount(n int) {
	n = c.clampLogged("compactLineCount", n, atLeast(1, n))
	if c.cfg.CompactLineCount == n {
		return
	}
	c.cfg.CompactLineCount = n
	if c.cfg.FixedHeight && !c.cfg.Expandable {
		c.pin()
	}
}

func (c *Controller) InitialLineCount() int { return c.cfg.InitialLineCount }

func (c *Controller) SetInitialLineCount(n int) {
	c.cfg.InitialLineCount = c.clampLogged("initialLineCount", n, atLeast(1, n))
}

func (c *Controller) MaxCharacters() int { return c.cfg.MaxCharacters }

// SetMaxCharacters changes the limit. Unbounded also clears the threshold.
// Text already longer than a new bound is clipped.
func (c *Controller) SetMaxCharacters(max int) {
	max = c.clampLogged("maxCharacters", max, clampMaxCharacters(max))
	c.cfg.MaxCharacters = max
	c.cfg.CharacterThreshold = clampThreshold(c.cfg.CharacterThreshold, max)
	c.limiter = Limiter{Max: max, Threshold: c.cfg.CharacterThreshold}

	c.commit(c.text)
	c.updateIndicator()
	c.schedule(func() {
		c.surface.SetLimitText(c.limitLabel())
	})
}

func (c *Controller) CharacterThreshold() int { return c.cfg.CharacterThreshold }

func (c *Controller) SetCharacterThreshold(threshold int) {
	threshold = c.clampLogged("characterThreshold", threshold, clampThreshold(threshold, c.cfg.MaxCharacters))
	c.cfg.CharacterThreshold = threshold
	c.limiter.Threshold = threshold
	c.updateIndicator()
}

func (c *Controller) LimitationText() string { return c.cfg.LimitationText }

func (c *Controller) SetLimitationText(text string) {
	c.cfg.LimitationText = text
	c.schedule(func() {
		c.surface.SetLimitText(c.limitLabel())
	})
}

func (c *Controller) IsEditable() bool { return c.editable }

func (c *Controller) SetEditable(editable bool) {
	c.editable = editable
	c.surface.SetEditable(editable)
}

// ExpandedLineCount is the last measured number of visual lines.
func (c *Controller) ExpandedLineCount() int { return c.expandedLines }

func (c *Controller) LineHeight() float64 { return c.lineHeight }

// Geometry is the last geometry handed to the surface.
func (c *Controller) Geometry() Geometry { return c.geometry }

// LimitIndicatorVisible reports the indicator state last sent to the surface.
func (c *Controller) LimitIndicatorVisible() bool { return c.indicator }

// NoOfLines measures the current text without touching ExpandedLineCount.
// It answers CompactLineCount when there is nothing to measure.
func (c *Controller) NoOfLines() int {
	if c.text == "" {
		return c.cfg.CompactLineCount
	}
	m := c.counter.Measure(c.text, c.metrics)
	if !m.Available {
		return c.cfg.CompactLineCount
	}
	return m.Lines
}

// Exhausted reports whether the limit has been hit: no characters remain, or
// the last edit was cut at the limit. A grapheme cluster straddling the limit
// is refused whole, so the second case can leave the text short of
// MaxCharacters-1.
func (c *Controller) Exhausted() bool {
	if !c.limiter.Bounded() {
		return false
	}
	return c.clipped || c.limiter.Remaining(Length(c.text)) <= 0
}

func (c *Controller) limitLabel() string {
	if !c.limiter.Bounded() {
		return ""
	}
	return c.limiter.Label(Length(c.text), c.cfg.LimitationText)
}

func (c *Controller) updateIndicator() {
	visible := !c.cfg.Stacked &&
		c.limiter.ShouldWarn(Length(c.text)) &&
		!(c.cfg.FixedHeight && !c.cfg.Expandable)
	c.indicator = visible
	c.surface.ShowLimitIndicator(visible)
}

func (c *Controller) clampLogged(field string, given, used int) int {
	if given != used {
		logger.Debug("expand[%s]: %v", c.id, errors.NewClampedValue(field, given, used))
	}
	return used
}

// mirrorText reserves the row the caret moves to after the last character.
func mirrorText(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
