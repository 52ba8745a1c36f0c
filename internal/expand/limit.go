// ABOUTME: Character limit enforcement and near-limit warning arithmetic
// ABOUTME: Over-limit edits are clipped to a prefix, never rejected wholesale

package expand

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Length is the character count used for every limit decision: code points,
// the same unit bubbles/textarea counts for its own CharLimit.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

type Limiter struct {
	Max       int
	Threshold int
}

func (l Limiter) Bounded() bool {
	return l.Max != Unbounded
}

// Filter returns the text that may be committed for a proposed full text.
// Once the proposal reaches Max it is cut to at most Max-1 characters. The cut
// lands on a grapheme cluster boundary, so the kept prefix can be shorter.
func (l Limiter) Filter(proposed string) (string, bool) {
	if !l.Bounded() || Length(proposed) < l.Max {
		return proposed, false
	}
	return truncateGraphemes(proposed, l.Max-1), true
}

// ShouldWarn reports whether a text of the given length is near the limit.
func (l Limiter) ShouldWarn(length int) bool {
	if !l.Bounded() {
		return false
	}
	return length >= l.Max-l.Threshold-1
}

// Remaining is how many more characters can be typed.
func (l Limiter) Remaining(length int) int {
	if !l.Bounded() {
		return Unbounded
	}
	return l.Max - length - 1
}

// Label renders the limit indicator text, e.g. "12 characters left".
func (l Limiter) Label(length int, suffix string) string {
	return strings.TrimSpace(fmt.Sprintf("%d %s", l.Remaining(length), suffix))
}

func truncateGraphemes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	var sb strings.Builder
	count := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		if count+len(runes) > maxRunes {
			break
		}
		sb.WriteString(g.Str())
		count += len(runes)
	}
	return sb.String()
}
