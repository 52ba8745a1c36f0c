// ABOUTME: Geometry types and the capability interface for text metrics
// ABOUTME: Implemented by whichever rendering layer hosts the text area

package expand

// Rect is an axis-aligned rectangle in the metrics provider's units.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) MinY() float64 { return r.Y }

func (r Rect) MaxY() float64 { return r.Y + r.Height }

// MetricsProvider reports on-screen geometry for the current text layout.
// Offsets count code points. Both methods return an error satisfying
// errors.IsMetricsUnavailable when no layout exists for the request.
type MetricsProvider interface {
	BoundsOfCharacter(offset int) (Rect, error)
	CaretBounds() (Rect, error)
}
