// Package expand sizes a multi-line text input that switches between a
// compact presentation pinned to a fixed number of lines and an expanded
// presentation that grows to fit its content.
//
// The package does not render anything. It measures text through a
// MetricsProvider, enforces an optional character limit, and tells a Surface
// which height to pin and which parts to show. All calls are expected on the
// single goroutine that owns the widget.
package expand
