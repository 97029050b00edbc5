// ABOUTME: Tests for TermScreen over a VirtualTerminal
// ABOUTME: Verifies emitted escape sequences, raw-mode lifecycle, and key decoding

package screen

import (
	"strings"
	"testing"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/terminal"
)

var _ Screen = (*TermScreen)(nil)

func TestTermScreen_WriteAt(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	s := NewTermScreen(vt)

	if err := s.WriteAt(0, 0, "x"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteAt(9, 4, "y"); err != nil {
		t.Fatal(err)
	}
	if got, want := vt.Output(), "\x1b[1;1Hx\x1b[5;10Hy"; got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestTermScreen_CursorAndClear(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	s := NewTermScreen(vt)

	_ = s.SetCursorVisible(false)
	_ = s.SetCursorVisible(true)
	_ = s.Clear()

	out := vt.Output()
	for _, want := range []string{"\x1b[?25l", "\x1b[?25h", "\x1b[2J", "\x1b[H"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output() %q missing %q", out, want)
		}
	}
}

func TestTermScreen_OpenClose(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	s, err := Open(vt)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Error("Open() should enter raw mode")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if vt.IsRawMode() {
		t.Error("Close() should leave raw mode")
	}
}

func TestTermScreen_ReadKey(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.SendInput("\x1b[A\x7f")
	s := NewTermScreen(vt)

	for _, want := range []key.Key{key.Up, key.Backspace} {
		got, err := s.ReadKey()
		if err != nil || got != want {
			t.Fatalf("ReadKey() = %v, %v; want %v", got, err, want)
		}
	}
}

func TestTermScreen_Size(t *testing.T) {
	t.Parallel()

	s := NewTermScreen(terminal.NewVirtualTerminal(5, 5))
	w, h, err := s.Size()
	if err != nil || w != 5 || h != 5 {
		t.Errorf("Size() = %d, %d, %v; want 5, 5, nil", w, h, err)
	}
}
