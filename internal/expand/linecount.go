// ABOUTME: Converts text plus layout metrics into a count of visual lines
// ABOUTME: Falls back to caret bounds, then to a single line, when metrics are missing

package expand

import (
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/harper/expandable-textarea/internal/errors"
	"github.com/harper/expandable-textarea/internal/logger"
)

// DefaultLinePadding is subtracted from the reported line height before
// dividing. Character rectangles from the layout backend overlap their
// neighbours by this much, so the vertical distance between rows is
// lineHeight-padding. It is calibrated against internal/layout; a different
// backend must measure its own value.
const DefaultLinePadding = 2.0

// lineTerminators matches \r\n as one terminator, plus lone \n, \v, \f, \r,
// NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR.
var lineTerminators = regexp.MustCompile("\r\n|[\n\v\f\r\u0085\u2028\u2029]")

// CountLineTerminators returns the number of explicit line breaks in text.
func CountLineTerminators(text string) int {
	return len(lineTerminators.FindAllStringIndex(text, -1))
}

// NormalizeLineTerminators rewrites every terminator CountLineTerminators
// counts as a single \n, so the count is unchanged.
func NormalizeLineTerminators(text string) string {
	return lineTerminators.ReplaceAllString(text, "\n")
}

// Measurement is the result of one line count.
type Measurement struct {
	Lines int
	// LineHeight is the height of the last character's rectangle, or 0 when
	// nothing was measured.
	LineHeight float64
	// Available is false when the layout could not answer and Lines is the
	// single-line default.
	Available bool
}

type LineCounter struct {
	Padding float64
}

func NewLineCounter() LineCounter {
	return LineCounter{Padding: DefaultLinePadding}
}

// Count is Measure without the detail.
func (lc LineCounter) Count(text string, metrics MetricsProvider) int {
	return lc.Measure(text, metrics).Lines
}

// Measure counts visual lines in text. The result is always at least 1.
func (lc LineCounter) Measure(text string, metrics MetricsProvider) Measurement {
	m := lc.geometric(text, metrics)

	// A trailing terminator moves the caret to a new, still empty row that no
	// character rectangle covers yet.
	if m.Lines == CountLineTerminators(text) {
		m.Lines++
	}
	return m
}

func (lc LineCounter) geometric(text string, metrics MetricsProvider) Measurement {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return Measurement{Lines: 1, Available: true}
	}
	if metrics == nil {
		return Measurement{Lines: 1}
	}

	start, errStart := metrics.BoundsOfCharacter(0)
	end, errEnd := metrics.BoundsOfCharacter(n - 1)
	if errStart != nil || errEnd != nil {
		logUnexpected(errStart, errEnd)
		start, errStart = metrics.CaretBounds()
		end, errEnd = metrics.BoundsOfCharacter(n - 1)
	}
	if errStart != nil || errEnd != nil {
		logUnexpected(errStart, errEnd)
		return Measurement{Lines: 1}
	}

	lineHeight := end.Height
	if lineHeight <= 0 {
		return Measurement{Lines: 1}
	}
	pitch := lineHeight - lc.Padding
	if pitch <= 0 {
		pitch = lineHeight
	}

	lines := int(math.Floor((end.MaxY() - start.MinY()) / pitch))
	return Measurement{
		Lines:      atLeast(1, lines),
		LineHeight: lineHeight,
		Available:  true,
	}
}

// logUnexpected reports provider failures other than a missing layout. They
// are recovered from the same way.
func logUnexpected(errs ...error) {
	for _, err := range errs {
		if err != nil && !errors.IsMetricsUnavailable(err) {
			logger.Warn("expand: metrics provider error: %v", err)
		}
	}
}
