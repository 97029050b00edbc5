// ABOUTME: Process-wide default theme behind an atomic.Pointer
// ABOUTME: Read once when a popup snapshots its render context; Set at startup

package theme

import "sync/atomic"

var current atomic.Pointer[Theme]

func init() {
	current.Store(&Theme{Name: "default", Palette: DefaultPalette()})
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme. A nil theme is ignored.
func Set(t *Theme) {
	if t == nil {
		return
	}
	current.Store(t)
}
