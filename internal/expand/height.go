// ABOUTME: Target height computation for compact and expanded presentation
// ABOUTME: Pure function of mode, line counts, line height and configuration

package expand

// Mode is the presentation currently pinned while fixed height is active.
type Mode int

const (
	Compact Mode = iota
	Expanded
)

func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// antiFlickerLength is the text length above which a single measured line is
// assumed to be a layout that has not caught up yet.
const antiFlickerLength = 16

// Geometry is the pinned size and visibility of the surface.
type Geometry struct {
	Mode   Mode
	Height float64
	// Rows is the line count Height was derived from.
	Rows          int
	EditorVisible bool
}

// ResolveHeight computes the geometry for mode. In Compact the editor is
// hidden and the read-only mirror takes its place at the same height.
func ResolveHeight(mode Mode, expandedLines int, lineHeight float64, textLength int, cfg Config) Geometry {
	if mode == Compact {
		return Geometry{
			Mode:   Compact,
			Height: float64(cfg.CompactLineCount) * lineHeight,
			Rows:   cfg.CompactLineCount,
		}
	}

	rows := expandedLines
	if textLength > antiFlickerLength {
		if expandedLines == 1 || (cfg.Stacked && cfg.InitialLineCount > expandedLines) {
			rows = cfg.InitialLineCount
		}
	}
	return Geometry{
		Mode:          Expanded,
		Height:        float64(rows) * lineHeight,
		Rows:          rows,
		EditorVisible: true,
	}
}
