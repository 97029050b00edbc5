// ABOUTME: VisibleWidth measures how many terminal cells a string occupies
// ABOUTME: ASCII fast path; grapheme-aware measurement via uniseg + runewidth otherwise

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the display width of s in terminal cells.
// ANSI escape sequences contribute zero width; East Asian wide runes and
// emoji count as two cells.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += ClusterWidth(cluster)
	}
	return w
}

// ClusterWidth returns the cell width of a single grapheme cluster.
// The first rune decides; combining marks ride along for free.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}
