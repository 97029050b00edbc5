// ABOUTME: Tests for the in-memory Canvas screen
// ABOUTME: Covers clipping, style capture, wide clusters, cursor tracking, and scripted keys

package screen

import (
	"errors"
	"testing"

	"github.com/mauromedda/termpopup/pkg/tui/key"
)

var _ Screen = (*Canvas)(nil)

func TestCanvas_WriteAtPlacesText(t *testing.T) {
	t.Parallel()

	c := NewCanvas(10, 3)
	if err := c.WriteAt(2, 1, "╔═╗"); err != nil {
		t.Fatal(err)
	}

	if got := c.Line(1); got != "  ╔═╗" {
		t.Errorf("Line(1) = %q, want %q", got, "  ╔═╗")
	}
	if x, y := c.Cursor(); x != 5 || y != 1 {
		t.Errorf("Cursor() = (%d, %d), want (5, 1)", x, y)
	}
}

func TestCanvas_WriteAtClips(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 2)
	_ = c.WriteAt(2, 0, "abcdef")
	_ = c.WriteAt(0, 5, "zzz")
	_ = c.WriteAt(-1, 1, "xy")

	if got := c.Text(); got != "  ab\ny" {
		t.Errorf("Text() = %q, want %q", got, "  ab\ny")
	}
}

func TestCanvas_Styles(t *testing.T) {
	t.Parallel()

	c := NewCanvas(6, 1)
	_ = c.WriteAt(0, 0, "a\x1b[7mb\x1b[0mc")

	if got := c.Cell(0, 0); got.Style != "" {
		t.Errorf("cell 0 style = %q, want none", got.Style)
	}
	if got := c.Cell(1, 0); got.Text != "b" || got.Style != "\x1b[7m" {
		t.Errorf("cell 1 = %+v, want inverted b", got)
	}
	if got := c.Cell(2, 0); got.Style != "" {
		t.Errorf("cell 2 style = %q, want none after reset", got.Style)
	}
	if got, want := c.String(), "a\x1b[7mb\x1b[0mc   "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCanvas_WideCluster(t *testing.T) {
	t.Parallel()

	c := NewCanvas(5, 1)
	_ = c.WriteAt(0, 0, "日x")

	if got := c.Cell(1, 0); got.Text != "" {
		t.Errorf("continuation cell = %+v, want empty text", got)
	}
	if got := c.Line(0); got != "日x" {
		t.Errorf("Line(0) = %q, want %q", got, "日x")
	}
}

func TestCanvas_ClearAndLog(t *testing.T) {
	t.Parallel()

	c := NewCanvas(5, 2)
	_ = c.WriteAt(0, 0, "abc")
	_ = c.Clear()

	if got := c.Text(); got != "\n" {
		t.Errorf("Text() after Clear = %q, want blank rows", got)
	}
	if c.Clears() != 1 || len(c.Writes()) != 1 {
		t.Errorf("Clears=%d Writes=%d, want 1 and 1", c.Clears(), len(c.Writes()))
	}
	c.ResetLog()
	if c.Clears() != 0 || len(c.Writes()) != 0 {
		t.Error("ResetLog() did not forget history")
	}
}

func TestCanvas_ReadKey(t *testing.T) {
	t.Parallel()

	c := NewCanvas(5, 5)
	c.Feed(key.Down, key.Enter)

	for _, want := range []key.Key{key.Down, key.Enter} {
		got, err := c.ReadKey()
		if err != nil || got != want {
			t.Fatalf("ReadKey() = %v, %v; want %v", got, err, want)
		}
	}
	if _, err := c.ReadKey(); !errors.Is(err, ErrNoInput) {
		t.Errorf("ReadKey() on empty script = %v, want ErrNoInput", err)
	}
}

func TestCanvas_CursorVisibility(t *testing.T) {
	t.Parallel()

	c := NewCanvas(1, 1)
	if !c.CursorVisible() {
		t.Fatal("cursor should start visible")
	}
	_ = c.SetCursorVisible(false)
	if c.CursorVisible() {
		t.Error("cursor should be hidden")
	}
}
