// ABOUTME: Tests for the terminal cell layout
// ABOUTME: Checks wrapping, wide characters, geometry units and line counting through it

package layout

import (
	"strings"
	"testing"

	"github.com/harper/expandable-textarea/internal/errors"
	"github.com/harper/expandable-textarea/internal/expand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(width int, text string) *Grid {
	g := NewGrid()
	g.SetWidth(width)
	g.SetText(text)
	return g
}

func TestGrid_NoLayoutWithoutWidth(t *testing.T) {
	g := NewGrid()
	g.SetText("hello")

	_, err := g.BoundsOfCharacter(0)
	assert.True(t, errors.IsMetricsUnavailable(err))

	_, err = g.CaretBounds()
	assert.True(t, errors.IsMetricsUnavailable(err))
	assert.Zero(t, g.Rows())
}

func TestGrid_OffsetOutOfRange(t *testing.T) {
	g := newGrid(20, "abc")

	_, err := g.BoundsOfCharacter(3)
	assert.True(t, errors.IsMetricsUnavailable(err))

	_, err = g.BoundsOfCharacter(-1)
	assert.True(t, errors.IsMetricsUnavailable(err))
}

func TestGrid_Units(t *testing.T) {
	g := newGrid(4, "abcdef")

	first, err := g.BoundsOfCharacter(0)
	require.NoError(t, err)
	assert.Equal(t, expand.Rect{X: 0, Y: 0, Width: DefaultCellWidth, Height: DefaultCellHeight}, first)

	// "ef" wraps to the second row.
	e, err := g.BoundsOfCharacter(4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.X)
	assert.Equal(t, DefaultCellHeight-expand.DefaultLinePadding, e.Y)
}

func TestGrid_Rows(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		text     string
		expected int
	}{
		{"empty", 10, "", 1},
		{"fits", 10, "hello", 1},
		{"hard break", 10, "a\nb", 2},
		{"trailing break", 10, "abc\n", 2},
		{"crlf", 10, "a\r\nb", 2},
		{"word wrap", 10, "hello brave new world", 3},
		{"long word breaks", 4, "abcdefghij", 3},
		{"wide characters", 4, "日本語", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, newGrid(tt.width, tt.text).Rows())
		})
	}
}

func TestGrid_WordWrapKeepsWordsTogether(t *testing.T) {
	g := newGrid(10, "hello brave")

	// "brave" starts at offset 6 and moves to the second row whole.
	b, err := g.BoundsOfCharacter(6)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.X)
	assert.Greater(t, b.Y, 0.0)
}

func TestGrid_GraphemeClusterSharesCell(t *testing.T) {
	g := newGrid(10, "e\u0301x")

	e, err := g.BoundsOfCharacter(0)
	require.NoError(t, err)
	accent, err := g.BoundsOfCharacter(1)
	require.NoError(t, err)
	x, err := g.BoundsOfCharacter(2)
	require.NoError(t, err)

	assert.Equal(t, e, accent)
	assert.Equal(t, DefaultCellWidth, x.X)
}

func TestGrid_Caret(t *testing.T) {
	g := newGrid(10, "ab\n")

	end, err := g.CaretBounds()
	require.NoError(t, err)
	assert.Equal(t, 0.0, end.X)
	assert.Equal(t, DefaultCellHeight-expand.DefaultLinePadding, end.Y)

	g.SetText("ab")
	end, err = g.CaretBounds()
	require.NoError(t, err)
	assert.Equal(t, 2*DefaultCellWidth, end.X)
	assert.Equal(t, 0.0, end.Y)
}

func TestGrid_SetWidthReportsChange(t *testing.T) {
	g := NewGrid()

	assert.True(t, g.SetWidth(30))
	assert.False(t, g.SetWidth(30))
	assert.True(t, g.SetWidth(10))
	assert.Equal(t, 10, g.Width())
}

func TestGrid_ReflowOnWidthChange(t *testing.T) {
	g := newGrid(40, strings.Repeat("word ", 10))
	assert.Equal(t, 2, g.Rows())

	g.SetWidth(10)
	assert.Equal(t, 5, g.Rows())
}

func TestGrid_DrivesLineCounter(t *testing.T) {
	lc := expand.NewLineCounter()

	tests := []struct {
		name     string
		width    int
		text     string
		expected int
	}{
		{"single row", 20, "hello", 1},
		{"trailing newline", 20, "abc\n", 2},
		{"two logical lines", 20, "abc\ndef", 2},
		{"wrapped paragraph", 10, "hello brave new world", 3},
		{"many rows", 5, strings.Repeat("abcde", 12), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(tt.width, tt.text)
			assert.Equal(t, tt.expected, lc.Count(tt.text, g))
		})
	}
}
