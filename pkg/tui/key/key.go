// ABOUTME: Defines the Key type and ParseKey for terminal keyboard input parsing
// ABOUTME: Handles printable runes, control characters, and CSI/SS3 escape sequences

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // For printable characters
	Alt  bool
	Ctrl bool
}

// KeyType enumerates the kinds of key events a popup can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackspace                // Backspace / DEL (0x7F) / Ctrl+H
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyUnknown                  // Unrecognized input
)

// Convenience constructors used by callers that script input.
var (
	Up        = Key{Type: KeyUp}
	Down      = Key{Type: KeyDown}
	Left      = Key{Type: KeyLeft}
	Right     = Key{Type: KeyRight}
	Enter     = Key{Type: KeyEnter}
	Backspace = Key{Type: KeyBackspace}
	Escape    = Key{Type: KeyEscape}
)

// Char returns the Key for a printable rune.
func Char(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Runes returns one Key per rune of s.
func Runes(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Char(r))
	}
	return keys
}

// ParseKey parses one raw key token (as produced by Split) into a Key.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d, b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f, b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x03:
		return Key{Type: KeyCtrlC, Ctrl: true}
	case b == 0x04:
		return Key{Type: KeyCtrlD, Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence maps ESC-prefixed data to a Key.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Alt {
			return fmt.Sprintf("Alt+%c", k.Rune)
		}
		return string(k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
