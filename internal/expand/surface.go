// ABOUTME: The display surface the controller drives
// ABOUTME: Editable area, read-only mirror, and limit indicator instructions

package expand

// Surface receives sizing and visibility instructions. Implementations must
// not call back into the Controller from these methods.
type Surface interface {
	// SetText replaces the editable content with the accepted text.
	SetText(text string)
	// SetMirrorText updates the read-only mirror shown while compact.
	SetMirrorText(text string)
	PinHeight(g Geometry)
	// ReleaseHeight hands sizing back to the host layout.
	ReleaseHeight()
	// ShowEditor toggles between the editable area and the mirror.
	ShowEditor(visible bool)
	ShowLimitIndicator(visible bool)
	SetLimitText(text string)
	SetEditable(editable bool)
	RequestLayout()
	SuppressScrollBars()
}

// Scheduler runs fn after the current layout pass has completed.
type Scheduler func(fn func())

func runNow(fn func()) { fn() }
