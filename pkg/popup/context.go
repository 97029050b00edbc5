// ABOUTME: RenderContext carries the shading glyph, the kind style table, and the palette
// ABOUTME: Passed explicitly to every render call; DefaultContext snapshots the current theme

package popup

import "github.com/mauromedda/termpopup/pkg/tui/theme"

// DefaultShading is the glyph used for the drop shadow.
const DefaultShading = '░'

// Style is the icon and icon color for one kind.
type Style struct {
	Icon  rune
	Color theme.Color
}

// RenderContext holds everything a render call reads besides the popup itself.
// The Styles map is shared between copies and must be treated as read-only.
type RenderContext struct {
	Shading rune
	Styles  map[Kind]Style
	Palette theme.Palette
}

// NewContext builds a context whose kind colors come from p.
func NewContext(p theme.Palette) RenderContext {
	return RenderContext{
		Shading: DefaultShading,
		Styles: map[Kind]Style{
			Info:     {Icon: 'i', Color: p.Info},
			Question: {Icon: '?', Color: p.Question},
			Warning:  {Icon: '!', Color: p.Warning},
			Error:    {Icon: 'x', Color: p.Error},
			Custom:   {Icon: '◆', Color: p.Custom},
		},
		Palette: p,
	}
}

// DefaultContext returns a context for the process-wide theme.
func DefaultContext() RenderContext {
	return NewContext(theme.Current().Palette)
}

// WithShading returns a copy of rc using r for the shadow.
func (rc RenderContext) WithShading(r rune) RenderContext {
	rc.Shading = r
	return rc
}

// style resolves the icon and color for k. Kinds missing from the table
// fall back to the Info entry.
func (rc RenderContext) style(k Kind) Style {
	if s, ok := rc.Styles[k]; ok {
		return s
	}
	return rc.Styles[Info]
}
