// ABOUTME: Test doubles for the metrics provider and display surface
// ABOUTME: Metrics report a fixed number of rows regardless of text

package expand

import (
	"github.com/harper/expandable-textarea/internal/errors"
)

const testLineHeight = 17.0

// fakeMetrics lays every text out over a fixed number of rows. The first
// character sits on row 0 and every other offset on the last row.
type fakeMetrics struct {
	rows        int
	lineHeight  float64
	unavailable bool
	startFails  bool
}

func newFakeMetrics(rows int) *fakeMetrics {
	return &fakeMetrics{rows: rows, lineHeight: testLineHeight}
}

func (f *fakeMetrics) row(r int) Rect {
	return Rect{Y: float64(r) * (f.lineHeight - DefaultLinePadding), Width: 8, Height: f.lineHeight}
}

func (f *fakeMetrics) BoundsOfCharacter(offset int) (Rect, error) {
	if f.unavailable {
		return Rect{}, errors.NewMetricsUnavailable(offset, "no layout")
	}
	if offset == 0 {
		if f.startFails {
			return Rect{}, errors.NewMetricsUnavailable(offset, "out of range")
		}
		return f.row(0), nil
	}
	return f.row(f.rows - 1), nil
}

func (f *fakeMetrics) CaretBounds() (Rect, error) {
	if f.unavailable {
		return Rect{}, errors.NewMetricsUnavailable(-1, "no layout")
	}
	return f.row(0), nil
}

type fakeSurface struct {
	text             string
	mirror           string
	pinned           []Geometry
	released         int
	editorVisible    bool
	indicatorVisible bool
	indicatorEver    bool
	limitText        string
	editable         bool
	layoutRequests   int
	scrollSuppressed int
}

func (s *fakeSurface) SetText(text string)       { s.text = text }
func (s *fakeSurface) SetMirrorText(text string) { s.mirror = text }
func (s *fakeSurface) PinHeight(g Geometry)      { s.pinned = append(s.pinned, g) }
func (s *fakeSurface) ReleaseHeight()            { s.released++ }
func (s *fakeSurface) ShowEditor(visible bool)   { s.editorVisible = visible }
func (s *fakeSurface) SetLimitText(text string)  { s.limitText = text }
func (s *fakeSurface) SetEditable(editable bool) { s.editable = editable }
func (s *fakeSurface) RequestLayout()            { s.layoutRequests++ }
func (s *fakeSurface) SuppressScrollBars()       { s.scrollSuppressed++ }

func (s *fakeSurface) ShowLimitIndicator(visible bool) {
	s.indicatorVisible = visible
	if visible {
		s.indicatorEver = true
	}
}

func (s *fakeSurface) lastPinned() Geometry {
	if len(s.pinned) == 0 {
		return Geometry{}
	}
	return s.pinned[len(s.pinned)-1]
}

// queueScheduler holds deferred work until flush is called.
type queueScheduler struct {
	pending []func()
}

func (q *queueScheduler) schedule(fn func()) {
	q.pending = append(q.pending, fn)
}

func (q *queueScheduler) flush() {
	pending := q.pending
	q.pending = nil
	for _, fn := range pending {
		fn()
	}
}
