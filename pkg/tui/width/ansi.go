// ABOUTME: ANSI escape sequence scanning, stripping, and SGR state tracking
// ABOUTME: Used to measure styled popup rows and to replay styles onto canvas cells

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = SequenceEnd(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// SequenceEnd returns the index of the first byte after the escape
// sequence that starts at s[i]. If s[i] is not ESC, i is returned.
func SequenceEnd(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters then a final byte in 0x40-0x7E.
		i++
		for i < len(s) {
			if b := s[i]; b >= 0x40 && b <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']', '_', 'P', '^':
		// OSC, APC, DCS, PM: terminated by BEL (OSC only) or ST.
		osc := s[i] == ']'
		i++
		for i < len(s) {
			if osc && s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(', ')':
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	default:
		return i + 1
	}
}

// IsSGR reports whether seq is a Select Graphic Rendition sequence (CSI ... m).
func IsSGR(seq string) bool {
	return len(seq) >= 3 && seq[0] == '\x1b' && seq[1] == '[' && seq[len(seq)-1] == 'm'
}

// ActiveSGR accumulates the SGR sequences in effect since the last reset.
type ActiveSGR struct {
	codes []string
}

// Reset clears all SGR state.
func (a *ActiveSGR) Reset() {
	a.codes = a.codes[:0]
}

// Apply folds seq into the state. Non-SGR sequences are ignored; a reset
// (ESC[0m or ESC[m) drops everything accumulated so far.
func (a *ActiveSGR) Apply(seq string) {
	if !IsSGR(seq) {
		return
	}
	if seq == "\x1b[0m" || seq == "\x1b[m" {
		a.Reset()
		return
	}
	a.codes = append(a.codes, seq)
}

// String returns the combined SGR sequence that restores the current state.
func (a *ActiveSGR) String() string {
	return strings.Join(a.codes, "")
}
