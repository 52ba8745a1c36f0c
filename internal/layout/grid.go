// ABOUTME: Terminal cell layout that answers character geometry queries
// ABOUTME: Word-wraps text at a cell width using grapheme clusters and cell widths

package layout

import (
	"github.com/harper/expandable-textarea/internal/errors"
	"github.com/harper/expandable-textarea/internal/expand"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	DefaultCellHeight = expand.DefaultLineHeight
	DefaultCellWidth  = 8.0
	DefaultTabWidth   = 4
)

// cell is where one code point was placed. Code points of the same grapheme
// cluster share a cell.
type cell struct {
	row   int
	col   int
	width int
}

// Grid lays text out on a terminal grid and reports rectangles in virtual
// units: a row is CellHeight tall and rows start CellHeight-Padding apart, the
// overlap expand.LineCounter corrects for.
type Grid struct {
	CellHeight float64
	CellWidth  float64
	Padding    float64
	TabWidth   int

	width  int
	text   string
	cells  []cell
	endRow int
	endCol int
}

func NewGrid() *Grid {
	return &Grid{
		CellHeight: DefaultCellHeight,
		CellWidth:  DefaultCellWidth,
		Padding:    expand.DefaultLinePadding,
		TabWidth:   DefaultTabWidth,
	}
}

// SetWidth re-wraps at width cells and reports whether the width changed.
// A width of zero or less discards the layout.
func (g *Grid) SetWidth(width int) bool {
	if width == g.width {
		return false
	}
	g.width = width
	g.reflow()
	return true
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) SetText(text string) {
	if text == g.text {
		return
	}
	g.text = text
	g.reflow()
}

func (g *Grid) Text() string { return g.text }

// Rows is the number of rows the layout occupies, including the empty row
// after a trailing line break. It is 0 without a layout.
func (g *Grid) Rows() int {
	if !g.laidOut() {
		return 0
	}
	return g.endRow + 1
}

func (g *Grid) laidOut() bool {
	return g.width > 0
}

func (g *Grid) BoundsOfCharacter(offset int) (expand.Rect, error) {
	if !g.laidOut() {
		return expand.Rect{}, errors.NewMetricsUnavailable(offset, "no layout")
	}
	if offset < 0 || offset >= len(g.cells) {
		return expand.Rect{}, errors.NewMetricsUnavailable(offset, "offset out of range")
	}
	c := g.cells[offset]
	return g.rect(c.row, c.col, c.width), nil
}

// CaretBounds reports the insertion point after the last character.
func (g *Grid) CaretBounds() (expand.Rect, error) {
	if !g.laidOut() {
		return expand.Rect{}, errors.NewMetricsUnavailable(-1, "no layout")
	}
	return g.rect(g.endRow, g.endCol, 1), nil
}

func (g *Grid) rect(row, col, width int) expand.Rect {
	return expand.Rect{
		X:      float64(col) * g.CellWidth,
		Y:      float64(row) * (g.CellHeight - g.Padding),
		Width:  float64(width) * g.CellWidth,
		Height: g.CellHeight,
	}
}

// token is a grapheme cluster with its code point count and cell width.
type token struct {
	runes int
	width int
	space bool
	brk   bool
}

func (g *Grid) reflow() {
	g.cells = g.cells[:0]
	g.endRow, g.endCol = 0, 0
	if !g.laidOut() {
		g.cells = nil
		return
	}

	tokens := g.tokenize()
	row, col := 0, 0
	place := func(t token) {
		for i := 0; i < t.runes; i++ {
			g.cells = append(g.cells, cell{row: row, col: col, width: t.width})
		}
		col += t.width
	}

	for i := 0; i < len(tokens); {
		t := tokens[i]
		switch {
		case t.brk:
			place(t)
			row, col = row+1, 0
			i++
		case t.space:
			if col > 0 && col+t.width > g.width {
				row, col = row+1, 0
			}
			place(t)
			i++
		default:
			j := i
			wordWidth := 0
			for j < len(tokens) && !tokens[j].space && !tokens[j].brk {
				wordWidth += tokens[j].width
				j++
			}
			if col > 0 && col+wordWidth > g.width {
				row, col = row+1, 0
			}
			for ; i < j; i++ {
				if col > 0 && col+tokens[i].width > g.width {
					row, col = row+1, 0
				}
				place(tokens[i])
			}
		}
	}
	g.endRow, g.endCol = row, col
}

func (g *Grid) tokenize() []token {
	var out []token
	col := 0
	gr := uniseg.NewGraphemes(g.text)
	for gr.Next() {
		s := gr.Str()
		t := token{runes: len(gr.Runes())}
		switch {
		case isLineBreak(s):
			t.brk = true
			col = 0
		case s == "\t":
			t.space = true
			t.width = g.TabWidth - col%maxInt(g.TabWidth, 1)
		case s == " ":
			t.space = true
			t.width = 1
		default:
			t.width = runewidth.StringWidth(s)
		}
		col += t.width
		out = append(out, t)
	}
	return out
}

// isLineBreak matches the terminators expand.CountLineTerminators counts.
// uniseg keeps \r\n together as one cluster.
func isLineBreak(s string) bool {
	return expand.CountLineTerminators(s) > 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
