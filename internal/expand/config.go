// ABOUTME: Expansion configuration with defaults and silent clamping
// ABOUTME: Invalid values are replaced by the nearest valid value, never rejected

package expand

import (
	"math"

	"github.com/harper/expandable-textarea/internal/errors"
)

const (
	// Unbounded disables the character limit.
	Unbounded = math.MaxInt
	// Unset disables the near-limit warning.
	Unset = -1

	MinMaxCharacters        = 5
	DefaultCompactLineCount = 2
	DefaultInitialLineCount = 1
	DefaultLimitationText   = "characters left"
	// DefaultLineHeight is used until the metrics provider reports a real one.
	DefaultLineHeight = 17.0
)

// Config is the construction-time configuration of a Controller. Start from
// DefaultConfig; the zero value clamps MaxCharacters to MinMaxCharacters.
type Config struct {
	Expandable         bool
	FixedHeight        bool
	CompactLineCount   int
	MaxCharacters      int
	CharacterThreshold int
	InitialLineCount   int
	LimitationText     string
	// Stacked drops the limit indicator slot. The anti-flicker guard then also
	// covers an initial line count larger than the measured one.
	Stacked bool
}

func DefaultConfig() Config {
	return Config{
		Expandable:         false,
		FixedHeight:        true,
		CompactLineCount:   DefaultCompactLineCount,
		MaxCharacters:      Unbounded,
		CharacterThreshold: Unset,
		InitialLineCount:   DefaultInitialLineCount,
		LimitationText:     DefaultLimitationText,
	}
}

// Normalize returns a copy with every field clamped into range, plus a record
// of each value that had to change.
func (c Config) Normalize() (Config, []*errors.ClampedValueError) {
	var clamped []*errors.ClampedValueError
	note := func(field string, given, used int) int {
		if given != used {
			clamped = append(clamped, errors.NewClampedValue(field, given, used))
		}
		return used
	}

	c.CompactLineCount = note("compactLineCount", c.CompactLineCount, atLeast(1, c.CompactLineCount))
	c.InitialLineCount = note("initialLineCount", c.InitialLineCount, atLeast(1, c.InitialLineCount))
	c.MaxCharacters = note("maxCharacters", c.MaxCharacters, clampMaxCharacters(c.MaxCharacters))
	c.CharacterThreshold = note("characterThreshold", c.CharacterThreshold,
		clampThreshold(c.CharacterThreshold, c.MaxCharacters))
	return c, clamped
}

func clampMaxCharacters(v int) int {
	return atLeast(MinMaxCharacters, v)
}

// clampThreshold forces Unset when the limit is unbounded and otherwise keeps
// the threshold within [0, max]. Unset itself is a valid bounded value.
func clampThreshold(v, max int) int {
	if max == Unbounded || v == Unset {
		return Unset
	}
	return clamp(0, max, v)
}

func atLeast(min, v int) int {
	if v < min {
		return min
	}
	return v
}

func clamp(min, max, v int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
