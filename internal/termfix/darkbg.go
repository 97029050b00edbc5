// ABOUTME: Fixes lipgloss to a dark background before Bubble Tea initialises
// ABOUTME: Import with _ ahead of any package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background lipgloss skips the OSC 10/11 color
	// query that bubbletea's init would otherwise trigger. Those replies
	// arrive on stdin and would be decoded as popup key presses.
	//
	// No bubbletea import here, direct or transitive, so this runs first.
	lipgloss.SetHasDarkBackground(true)
}
