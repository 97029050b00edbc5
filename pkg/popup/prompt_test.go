// ABOUTME: Tests for the TextPrompt popup: limit, scrolling, counter styling, and Show
// ABOUTME: Uses scripted keys on a Canvas and inspects rendered cells

package popup

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
)

func typeText(p *TextPrompt, s string) {
	for _, k := range key.Runes(s) {
		p.HandleKey(k)
	}
}

func TestTextPrompt_ShowRespectsLimit(t *testing.T) {
	t.Parallel()

	p, err := NewTextPrompt("Name:", WithLimit(3))
	if err != nil {
		t.Fatal(err)
	}
	c := screen.NewCanvas(40, 12)
	c.Feed(key.Runes("abcd")...)
	c.Feed(key.Enter)

	got, err := p.Show(c, Auto, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != "abc" {
		t.Errorf("Show() = %q, want %q", got, "abc")
	}
	if !c.CursorVisible() || c.Clears() == 0 {
		t.Error("Show() should restore the cursor and clear the screen")
	}
}

func TestTextPrompt_Limit(t *testing.T) {
	t.Parallel()

	p, _ := NewTextPrompt("Name:", WithLimit(5))
	typeText(p, "abcdef")
	if got := p.Value(); got != "abcde" {
		t.Errorf("Value() = %q, want %q", got, "abcde")
	}
}

func TestTextPrompt_Editing(t *testing.T) {
	t.Parallel()

	p, _ := NewTextPrompt("Name:")
	p.HandleKey(key.Backspace)
	typeText(p, "héllo")
	p.HandleKey(key.Backspace)
	p.HandleKey(key.Key{Type: key.KeyRune, Rune: 0x01})
	p.HandleKey(key.Key{Type: key.KeyRune, Rune: 'z', Alt: true})
	p.HandleKey(key.Left)

	if got := p.Value(); got != "héll" {
		t.Errorf("Value() = %q, want %q", got, "héll")
	}
	if p.HandleKey(key.Char('q')) {
		t.Error("a printable key should not finish the prompt")
	}
	if !p.HandleKey(key.Enter) {
		t.Error("Enter should finish the prompt")
	}
}

func TestTextPrompt_ScrollOffset(t *testing.T) {
	t.Parallel()

	p, _ := NewTextPrompt("0123456789")
	if p.Width() != 10 {
		t.Fatalf("Width() = %d, want 10", p.Width())
	}
	typeText(p, "abcdefghijklmno")
	if p.Offset() != 5 {
		t.Errorf("Offset() = %d, want 5", p.Offset())
	}
	for range 6 {
		p.HandleKey(key.Backspace)
	}
	if p.Offset() != 0 {
		t.Errorf("Offset() after deleting = %d, want 0", p.Offset())
	}
}

func TestTextPrompt_RenderScrolled(t *testing.T) {
	t.Parallel()

	p, _ := NewTextPrompt("0123456789")
	typeText(p, "abcdefghijklmno")
	c := screen.NewCanvas(30, 10)
	if err := p.Render(c, testContext(), 0, 0); err != nil {
		t.Fatal(err)
	}

	if got, want := c.Line(3), "║ <hijklmno  ║░"; got != want {
		t.Errorf("input row = %q, want %q", got, want)
	}
	if got := c.Cell(2, 3).Style; got != "\x1b[7m" {
		t.Errorf("marker style = %q, want inverse", got)
	}
	if got := c.Cell(3, 3).Style; got != "\x1b[1m" {
		t.Errorf("text style = %q, want bold", got)
	}
	if got, want := c.Line(4), "║ 15         ║░"; got != want {
		t.Errorf("counter row = %q, want %q", got, want)
	}
	if !c.CursorVisible() {
		t.Error("cursor should be visible while text is present")
	}
}

func TestTextPrompt_RenderPlaceholder(t *testing.T) {
	t.Parallel()

	p, _ := NewTextPrompt("Name:", WithPlaceholder("your name"), WithLimit(20))
	if p.Width() != 13 || p.Height() != 4 {
		t.Fatalf("size = %dx%d, want 13x4", p.Width(), p.Height())
	}
	c := screen.NewCanvas(30, 10)
	if err := p.Render(c, testContext(), 0, 0); err != nil {
		t.Fatal(err)
	}

	if got := c.Line(2); !strings.HasPrefix(got, "╟") {
		t.Errorf("separator row = %q", got)
	}
	if got := c.Line(3); !strings.HasPrefix(got, "║ your name") {
		t.Errorf("input row = %q, want placeholder", got)
	}
	if got := c.Cell(2, 3).Style; got != "\x1b[1m" {
		t.Errorf("placeholder style = %q, want bold", got)
	}
	if got := c.Line(4); !strings.HasPrefix(got, "║ 0/20") {
		t.Errorf("counter row = %q, want 0/20", got)
	}
	if c.CursorVisible() {
		t.Error("cursor should be hidden while showing the placeholder")
	}
}

func TestTextPrompt_SetPlaceholder(t *testing.T) {
	t.Parallel()

	p, _ := NewTextPrompt("Name:")
	if p.Width() != 5 {
		t.Fatalf("Width() = %d, want 5", p.Width())
	}

	p.SetPlaceholder("a much longer hint")
	if p.Width() != 22 || p.Height() != 4 {
		t.Errorf("size after SetPlaceholder = %dx%d, want 22x4", p.Width(), p.Height())
	}
	c := screen.NewCanvas(40, 10)
	if err := p.Render(c, testContext(), 0, 0); err != nil {
		t.Fatal(err)
	}
	if got := c.Line(3); !strings.HasPrefix(got, "║ a much longer hint") {
		t.Errorf("input row = %q, want new placeholder", got)
	}

	p.SetPlaceholder("")
	if p.Width() != 5 {
		t.Errorf("Width() after clearing placeholder = %d, want 5", p.Width())
	}
}

func TestTextPrompt_CounterStyle(t *testing.T) {
	t.Parallel()

	rc := testContext()
	tests := []struct {
		name   string
		limit  int
		typed  int
		hasLim bool
		want   string
	}{
		{"no limit", 0, 30, false, "30"},
		{"far below", 20, 11, true, "11/20"},
		{"at warning threshold", 20, 12, true, "\x1b[93m12/20\x1b[0m"},
		{"just below limit", 20, 19, true, "\x1b[93m19/20\x1b[0m"},
		{"at limit", 20, 20, true, "\x1b[91m20/20\x1b[0m"},
		// limits under 8 warn from the first character
		{"small limit", 3, 0, true, "\x1b[93m0/3\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := []Option{WithWrap(40)}
			if tt.hasLim {
				opts = append(opts, WithLimit(tt.limit))
			}
			p, _ := NewTextPrompt("Type:", opts...)
			typeText(p, strings.Repeat("x", tt.typed))
			if got := p.counter(rc); got != tt.want {
				t.Errorf("counter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextPrompt_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewTextPrompt("x", WithLimit(-1)); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("NewTextPrompt(limit -1) error = %v, want ErrInvalidLimit", err)
	}
	p, _ := NewTextPrompt("x")
	if err := p.SetContent("y", 0); !errors.Is(err, ErrInvalidWrap) {
		t.Errorf("SetContent(wrap 0) error = %v, want ErrInvalidWrap", err)
	}
}

func TestTextPrompt_ShowStartsEmpty(t *testing.T) {
	t.Parallel()

	p, _ := NewTextPrompt("Name:")
	typeText(p, "stale")
	c := screen.NewCanvas(40, 12)
	c.Feed(key.Char('a'), key.Enter)

	got, err := QuickTextPrompt(c, "Name:")
	if err != nil || got != "a" {
		t.Errorf("QuickTextPrompt() = %q, %v; want a", got, err)
	}
	c.Feed(key.Char('b'), key.Enter)
	if got, _ := p.Show(c, 0, 0); got != "b" {
		t.Errorf("Show() = %q, want b", got)
	}
}
