// ABOUTME: TermScreen adapts a terminal.Terminal to the Screen port
// ABOUTME: Emits cursor positioning and erase sequences from charmbracelet/x/ansi

package screen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/terminal"
)

// TermScreen renders to a real (or virtual) terminal.
type TermScreen struct {
	term terminal.Terminal
	keys *key.Reader
}

// NewTermScreen wraps t. Keys are decoded from t's input stream.
func NewTermScreen(t terminal.Terminal) *TermScreen {
	return &TermScreen{term: t, keys: key.NewReader(t)}
}

// Open puts t into raw mode and returns a screen over it.
// Callers must Close the screen to restore the terminal.
func Open(t terminal.Terminal) (*TermScreen, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}
	return NewTermScreen(t), nil
}

// Close shows the cursor and leaves raw mode.
func (s *TermScreen) Close() error {
	if _, err := io.WriteString(s.term, ansi.ResetStyle+ansi.ShowCursor); err != nil {
		return fmt.Errorf("restoring cursor: %w", err)
	}
	return s.term.ExitRawMode()
}

// Size reports the terminal dimensions.
func (s *TermScreen) Size() (int, int, error) {
	return s.term.Size()
}

// WriteAt moves the cursor to (x, y) and writes text in one call.
func (s *TermScreen) WriteAt(x, y int, text string) error {
	_, err := io.WriteString(s.term, ansi.CursorPosition(x+1, y+1)+text)
	if err != nil {
		return fmt.Errorf("writing at %d,%d: %w", x, y, err)
	}
	return nil
}

// ReadKey blocks for the next decoded key.
func (s *TermScreen) ReadKey() (key.Key, error) {
	return s.keys.Next()
}

// SetCursorVisible toggles DECTCEM.
func (s *TermScreen) SetCursorVisible(visible bool) error {
	seq := ansi.HideCursor
	if visible {
		seq = ansi.ShowCursor
	}
	if _, err := io.WriteString(s.term, seq); err != nil {
		return fmt.Errorf("toggling cursor: %w", err)
	}
	return nil
}

// Clear resets styling, erases the display, and homes the cursor.
func (s *TermScreen) Clear() error {
	_, err := io.WriteString(s.term, ansi.ResetStyle+ansi.EraseEntireScreen+ansi.CursorHomePosition)
	if err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}
