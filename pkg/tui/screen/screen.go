// ABOUTME: Screen is the terminal port popups render through and read keys from
// ABOUTME: Absolute-position writes only; no frame buffering or diffing

package screen

import (
	"errors"

	"github.com/mauromedda/termpopup/pkg/tui/key"
)

// ErrNoInput is returned by ReadKey when a scripted screen runs out of keys.
var ErrNoInput = errors.New("no more input")

// Screen is the minimal terminal surface a popup needs.
// Coordinates are zero-based cell positions from the top-left corner.
type Screen interface {
	// Size reports the visible terminal width and height in cells.
	Size() (width, height int, err error)
	// WriteAt writes styled text starting at column x of row y.
	WriteAt(x, y int, text string) error
	// ReadKey blocks until the next key press.
	ReadKey() (key.Key, error)
	// SetCursorVisible shows or hides the text cursor.
	SetCursorVisible(visible bool) error
	// Clear erases the whole screen.
	Clear() error
}
