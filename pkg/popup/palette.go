// ABOUTME: Palette is a popup for picking one of the 16 standard terminal colors
// ABOUTME: A 2x8 grid of swatches navigated with the arrow keys; Enter returns the index

package popup

import (
	"fmt"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
	"github.com/mauromedda/termpopup/pkg/tui/theme"
)

const (
	paletteSize = 16
	paletteCols = 8
)

var paletteNames = [paletteSize]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright black", "bright red", "bright green", "bright yellow",
	"bright blue", "bright magenta", "bright cyan", "bright white",
}

// PaletteName returns the conventional name of a 16-color palette index.
func PaletteName(i int) string {
	if i < 0 || i >= paletteSize {
		return fmt.Sprintf("color(%d)", i)
	}
	return paletteNames[i]
}

// Palette asks the user to pick a 16-color palette index.
type Palette struct {
	Base
	squares  bool
	selected int
}

// NewPalette builds a palette picker. WithSquares applies.
func NewPalette(content string, opts ...Option) (*Palette, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &Palette{Base: newBase(o), squares: o.squares}
	if err := p.SetContent(content, o.wrap); err != nil {
		return nil, err
	}
	return p, nil
}

// SetContent re-wraps the message and recomputes the box size.
func (p *Palette) SetContent(content string, wrap int) error {
	if err := p.wrapContent(content, wrap); err != nil {
		return err
	}
	p.resize(paletteCols*2, 3)
	return nil
}

// SetSquares switches between letter and block swatches.
func (p *Palette) SetSquares(on bool) { p.squares = on }

// Value returns the highlighted palette index.
func (p *Palette) Value() int { return p.selected }

// Render draws the box, a separator, and the swatch grid. A '>' marker
// over the left border points at the first row while the selection is in it.
func (p *Palette) Render(scr screen.Screen, rc RenderContext, x, y int) error {
	x, y, ok, err := p.renderBase(scr, rc, x, y)
	if err != nil || !ok {
		return err
	}
	n := len(p.lines)
	if err := p.renderSeparator(scr, rc, x, y, n); err != nil {
		return err
	}
	top := y + n + 2
	if p.selected < paletteCols {
		if err := scr.WriteAt(x+1, top, ">"); err != nil {
			return err
		}
	}
	glyph := "Aa"
	if p.squares {
		glyph = "█░"
	}
	for i := range paletteSize {
		if err := scr.WriteAt(x+2+(i%paletteCols)*2, top+i/paletteCols, p.swatch(i, glyph)); err != nil {
			return err
		}
	}
	return nil
}

// swatch colors glyph with index i on black, or black on i when selected.
func (p *Palette) swatch(i int, glyph string) string {
	fg, bg := theme.Foreground16(i), theme.Background16(0)
	if i == p.selected {
		fg, bg = theme.Foreground16(0), theme.Background16(i)
	}
	return theme.NewColor(fg.Code() + bg.Code()).Apply(glyph)
}

// HandleKey moves across the grid or, on Enter, finishes.
func (p *Palette) HandleKey(k key.Key) bool {
	col := p.selected % paletteCols
	switch k.Type {
	case key.KeyUp:
		if p.selected >= paletteCols {
			p.selected -= paletteCols
		}
	case key.KeyDown:
		if p.selected < paletteCols {
			p.selected += paletteCols
		}
	case key.KeyLeft:
		if col > 0 {
			p.selected--
		}
	case key.KeyRight:
		if col < paletteCols-1 {
			p.selected++
		}
	case key.KeyEnter:
		return true
	}
	return false
}

// Reset moves the selection back to index 0.
func (p *Palette) Reset() { p.selected = 0 }

// Show runs the picker and returns the chosen palette index.
func (p *Palette) Show(scr screen.Screen, x, y int) (int, error) {
	if err := Run(scr, p, x, y); err != nil {
		return 0, err
	}
	return p.Value(), nil
}
