// ABOUTME: TextPrompt is a single-line text entry popup with an optional length limit
// ABOUTME: Long input scrolls left behind a '<' marker; a counter row tracks the length

package popup

import (
	"strconv"
	"unicode"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
	"github.com/mauromedda/termpopup/pkg/tui/width"
)

// counterSlack is how close to the limit the counter starts warning.
const counterSlack = 8

// TextPrompt asks the user for a line of text.
type TextPrompt struct {
	Base
	placeholder string
	limit       int
	hasLimit    bool

	buf    []rune
	offset int
}

// NewTextPrompt builds a text prompt. WithPlaceholder and WithLimit apply.
func NewTextPrompt(content string, opts ...Option) (*TextPrompt, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &TextPrompt{
		Base:        newBase(o),
		placeholder: o.placeholder,
		limit:       o.limit,
		hasLimit:    o.hasLimit,
	}
	if err := p.SetContent(content, o.wrap); err != nil {
		return nil, err
	}
	return p, nil
}

// SetContent re-wraps the message and recomputes the box size.
func (p *TextPrompt) SetContent(content string, wrap int) error {
	if err := p.wrapContent(content, wrap); err != nil {
		return err
	}
	p.layout()
	return nil
}

// SetPlaceholder replaces the placeholder and recomputes the box size.
func (p *TextPrompt) SetPlaceholder(text string) {
	p.placeholder = text
	p.layout()
}

func (p *TextPrompt) layout() {
	p.resize(width.VisibleWidth(p.placeholder)+4, 3)
}

// Limit returns the length limit and whether one is set.
func (p *TextPrompt) Limit() (int, bool) { return p.limit, p.hasLimit }

// Value returns the text entered so far.
func (p *TextPrompt) Value() string { return string(p.buf) }

// Offset returns the index of the first character scrolled into view.
func (p *TextPrompt) Offset() int { return p.offset }

// Render draws the box, a separator, the input line and the counter.
func (p *TextPrompt) Render(scr screen.Screen, rc RenderContext, x, y int) error {
	x, y, ok, err := p.renderBase(scr, rc, x, y)
	if err != nil || !ok {
		return err
	}
	n := len(p.lines)
	if err := p.renderSeparator(scr, rc, x, y, n); err != nil {
		return err
	}
	if err := scr.WriteAt(x+2, y+n+3, p.counter(rc)); err != nil {
		return err
	}

	row := y + n + 2
	if len(p.buf) == 0 {
		if err := scr.WriteAt(x+2, row, rc.Palette.Emphasis.Apply(p.placeholder)); err != nil {
			return err
		}
		return scr.SetCursorVisible(false)
	}
	text := string(p.buf)
	if len(p.buf) > p.width-1 {
		if err := scr.WriteAt(x+2, row, rc.Palette.Selection.Apply("<")); err != nil {
			return err
		}
		text = string(p.buf[p.offset+2:])
		x++
	}
	if err := scr.WriteAt(x+2, row, rc.Palette.Emphasis.Apply(text)); err != nil {
		return err
	}
	return scr.SetCursorVisible(true)
}

// counter formats the length counter. It is unstyled without a limit or
// while the length is below limit-8, warns until the limit is reached,
// and alerts at the limit. For limits under 8 the warning starts at once.
func (p *TextPrompt) counter(rc RenderContext) string {
	n := len(p.buf)
	if !p.hasLimit {
		return strconv.Itoa(n)
	}
	text := strconv.Itoa(n) + "/" + strconv.Itoa(p.limit)
	switch {
	case n < p.limit-counterSlack:
		return text
	case n == p.limit:
		return rc.Palette.CounterAlert.Apply(text)
	default:
		return rc.Palette.CounterWarn.Apply(text)
	}
}

// HandleKey edits the buffer or, on Enter, finishes.
func (p *TextPrompt) HandleKey(k key.Key) bool {
	switch k.Type {
	case key.KeyEnter:
		return true
	case key.KeyBackspace:
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}
	case key.KeyRune:
		if !k.Alt && !k.Ctrl && !unicode.IsControl(k.Rune) && (!p.hasLimit || len(p.buf) < p.limit) {
			p.buf = append(p.buf, k.Rune)
		}
	}
	p.offset = max(0, len(p.buf)-p.width)
	return false
}

// Reset empties the buffer.
func (p *TextPrompt) Reset() {
	p.buf = p.buf[:0]
	p.offset = 0
}

// Show runs the prompt and returns the entered text.
func (p *TextPrompt) Show(scr screen.Screen, x, y int) (string, error) {
	if err := Run(scr, p, x, y); err != nil {
		return "", err
	}
	return p.Value(), nil
}
