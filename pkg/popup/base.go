// ABOUTME: Base holds the frame shared by every popup and draws its box
// ABOUTME: Border, title, icon, content rows, and shadow; centred when the anchor is Auto

package popup

import (
	"fmt"
	"strings"

	"github.com/mauromedda/termpopup/pkg/tui/screen"
	"github.com/mauromedda/termpopup/pkg/tui/theme"
	"github.com/mauromedda/termpopup/pkg/tui/width"
)

// Auto centres the popup along an axis when passed as x or y.
const Auto = -1

const fitMessage = "Unable to fit window on screen"

// Base is the frame every variant embeds. Its size is recomputed from
// scratch by SetContent and by the variant's own setters.
type Base struct {
	title    string
	hasTitle bool
	kind     Kind
	icon     rune
	format   theme.Color
	ctx      RenderContext
	logf     LogFunc

	wrap         int
	lines        []string
	contentWidth int

	width  int
	height int
}

func newBase(o options) Base {
	b := Base{
		title:    o.title,
		hasTitle: o.hasTitle,
		kind:     o.kind,
		icon:     o.icon,
		format:   o.format,
		logf:     o.logf,
		wrap:     o.wrap,
	}
	if o.ctx != nil {
		b.ctx = *o.ctx
	} else {
		b.ctx = DefaultContext()
	}
	return b
}

// Width returns the inner width of the box.
func (b *Base) Width() int { return b.width }

// Height returns the number of rows between the top and bottom borders.
func (b *Base) Height() int { return b.height }

// Lines returns the wrapped content.
func (b *Base) Lines() []string { return b.lines }

// Kind returns the popup kind.
func (b *Base) Kind() Kind { return b.kind }

// SetKind changes the kind used to pick the default icon and color.
func (b *Base) SetKind(k Kind) { b.kind = k }

// Wrap returns the wrap width last used for the content.
func (b *Base) Wrap() int { return b.wrap }

// Title returns the title and whether one is set.
func (b *Base) Title() (string, bool) { return b.title, b.hasTitle }

// Context returns the render context captured at construction.
func (b *Base) Context() RenderContext { return b.ctx }

func (b *Base) wrapContent(content string, wrap int) error {
	if wrap < 1 {
		return ErrInvalidWrap
	}
	b.wrap = wrap
	b.lines, b.contentWidth = Wrap(content, wrap)
	return nil
}

// resize sets the box size for a variant needing at least minWidth columns
// and extraRows rows below the content. The width never drops below 1.
func (b *Base) resize(minWidth, extraRows int) {
	w := b.contentWidth
	if b.hasTitle {
		w = max(w, width.VisibleWidth(b.title)+2)
	}
	b.width = max(w, minWidth, 1)
	b.height = len(b.lines) + extraRows
}

func (b *Base) debugf(format string, args ...any) {
	if b.logf != nil {
		b.logf(format, args...)
	}
}

// renderBase draws the box and returns the resolved top-left corner.
// When the screen is too small it clears it, writes a one-line notice,
// and reports ok=false; nothing else is drawn in that case.
func (b *Base) renderBase(scr screen.Screen, rc RenderContext, x, y int) (int, int, bool, error) {
	termW, termH, err := scr.Size()
	if err != nil {
		return 0, 0, false, fmt.Errorf("reading screen size: %w", err)
	}
	if termW < b.width+4 || termH < b.height+2 {
		if err := scr.Clear(); err != nil {
			return 0, 0, false, err
		}
		notice := width.TruncateToWidth(rc.Palette.FitError.Apply(fitMessage), termW)
		return 0, 0, false, scr.WriteAt(0, 0, notice)
	}
	if x == Auto {
		x = (termW - b.width) / 2
	}
	if y == Auto {
		y = (termH - b.height) / 2
	}

	border := rc.Palette.Border
	shade := string(shading(rc))
	shadow := rc.Palette.Shadow.Apply(shade)

	w := &writer{scr: scr}
	w.at(x, y, border.Apply("╔╡")+b.styledIcon(rc)+border.Apply(b.topRun()))
	row := border.Apply("║"+strings.Repeat(" ", b.width+2)+"║") + shadow
	for i := range b.height {
		w.at(x, y+i+1, row)
	}
	for i, line := range b.lines {
		w.at(x+2, y+i+1, line)
	}
	w.at(x, y+b.height+1, border.Apply("╚"+strings.Repeat("═", b.width+2)+"╝")+shadow)
	w.at(x, y+b.height+2, " "+rc.Palette.Shadow.Apply(strings.Repeat(shade, b.width+4)))
	return x, y, true, w.err
}

// renderSeparator draws a divider over content row `row` of a box at (x, y).
func (b *Base) renderSeparator(scr screen.Screen, rc RenderContext, x, y, row int) error {
	line := rc.Palette.Border.Apply("╟"+strings.Repeat("─", b.width+2)+"╢") +
		rc.Palette.Shadow.Apply(string(shading(rc)))
	return scr.WriteAt(x, y+row+1, line)
}

// topRun is the part of the top border after the icon: either a plain
// run or the title followed by a fill up to the box width.
func (b *Base) topRun() string {
	if !b.hasTitle {
		return "╞" + strings.Repeat("═", b.width-1) + "╗"
	}
	head := "║" + b.title + "╞"
	fill := max(b.width-width.VisibleWidth(head), 0)
	return head + strings.Repeat("═", fill) + "╗"
}

func (b *Base) styledIcon(rc RenderContext) string {
	st := rc.style(b.kind)
	icon, color := st.Icon, st.Color
	if b.icon != 0 {
		icon = b.icon
	}
	if !b.format.IsZero() {
		color = b.format
	}
	if icon == 0 {
		icon = ' '
	}
	return color.Apply(string(icon))
}

func shading(rc RenderContext) rune {
	if rc.Shading == 0 {
		return DefaultShading
	}
	return rc.Shading
}

// writer keeps the first WriteAt error and skips later writes.
type writer struct {
	scr screen.Screen
	err error
}

func (w *writer) at(x, y int, text string) {
	if w.err != nil {
		return
	}
	w.err = w.scr.WriteAt(x, y, text)
}
