// ABOUTME: Tests for character limit filtering and warning thresholds
// ABOUTME: Covers truncation on paste, grapheme-safe cuts, and boundary crossings

package expand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_UnboundedPassesThrough(t *testing.T) {
	l := Limiter{Max: Unbounded, Threshold: Unset}
	long := strings.Repeat("x", 10000)

	got, truncated := l.Filter(long)

	assert.Equal(t, long, got)
	assert.False(t, truncated)
	assert.False(t, l.ShouldWarn(10000))
}

func TestLimiter_Filter(t *testing.T) {
	l := Limiter{Max: 10, Threshold: 2}

	tests := []struct {
		name      string
		proposed  string
		expected  string
		truncated bool
	}{
		{"below limit", "123456789", "123456789", false},
		{"reaching limit", "1234567890", "123456789", true},
		{"pasted overflow", strings.Repeat("p", 25), strings.Repeat("p", 9), true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := l.Filter(tt.proposed)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.truncated, truncated)
			assert.Less(t, Length(got), l.Max)
		})
	}
}

func TestLimiter_FilterKeepsGraphemeClusters(t *testing.T) {
	l := Limiter{Max: 5, Threshold: Unset}

	// "e" plus a combining acute accent is one cluster of two code points.
	got, truncated := l.Filter("abce\u0301")

	assert.True(t, truncated)
	assert.Equal(t, "abc", got)
}

func TestLimiter_FilterCountsCodePoints(t *testing.T) {
	l := Limiter{Max: 5, Threshold: Unset}

	got, truncated := l.Filter("äöü")

	assert.False(t, truncated)
	assert.Equal(t, "äöü", got)
}

func TestLimiter_ShouldWarnBoundary(t *testing.T) {
	l := Limiter{Max: 20, Threshold: 5}

	tests := []struct {
		length   int
		expected bool
	}{
		{0, false},
		{13, false},
		{14, true},
		{19, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, l.ShouldWarn(tt.length), "length=%d", tt.length)
	}
}

func TestLimiter_UnsetThresholdNeverWarns(t *testing.T) {
	l := Limiter{Max: 20, Threshold: Unset}

	for length := 0; length < 20; length++ {
		assert.False(t, l.ShouldWarn(length), "length=%d", length)
	}
}

func TestLimiter_Label(t *testing.T) {
	l := Limiter{Max: 20, Threshold: 5}

	assert.Equal(t, "15 characters left", l.Label(4, DefaultLimitationText))
	assert.Equal(t, "0 Zeichen übrig", l.Label(19, "Zeichen übrig"))
	assert.Equal(t, "15", l.Label(4, ""))
}
