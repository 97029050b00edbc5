// ABOUTME: Functional options shared by all popup constructors
// ABOUTME: Variant-specific options are ignored by variants that have no use for them

package popup

import "github.com/mauromedda/termpopup/pkg/tui/theme"

// LogFunc receives debug lines from the interaction loop.
type LogFunc func(format string, args ...any)

type options struct {
	title       string
	hasTitle    bool
	wrap        int
	kind        Kind
	icon        rune
	format      theme.Color
	ctx         *RenderContext
	placeholder string
	limit       int
	hasLimit    bool
	squares     bool
	logf        LogFunc
}

// Option configures a popup at construction.
type Option func(*options)

func defaultOptions() options {
	return options{wrap: DefaultWrap, kind: Info}
}

func applyOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.wrap < 1 {
		return o, ErrInvalidWrap
	}
	if o.hasLimit && o.limit < 0 {
		return o, ErrInvalidLimit
	}
	return o, nil
}

// WithTitle shows title inline with the top border.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
		o.hasTitle = true
	}
}

// WithWrap sets the ideal content line width (default 32).
func WithWrap(wrap int) Option {
	return func(o *options) { o.wrap = wrap }
}

// WithKind sets the popup kind (default Info).
func WithKind(k Kind) Option {
	return func(o *options) { o.kind = k }
}

// WithIcon overrides the kind's icon.
func WithIcon(icon rune) Option {
	return func(o *options) { o.icon = icon }
}

// WithFormat overrides the kind's icon color with a raw styling
// expression such as "92m" or "\e[1;92m".
func WithFormat(expr string) Option {
	return func(o *options) { o.format = theme.ParseColor(expr) }
}

// WithContext replaces the render context snapshotted at construction.
func WithContext(rc RenderContext) Option {
	return func(o *options) { o.ctx = &rc }
}

// WithPlaceholder sets the text prompt's placeholder.
func WithPlaceholder(text string) Option {
	return func(o *options) { o.placeholder = text }
}

// WithLimit caps the text prompt's length in characters.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
		o.hasLimit = true
	}
}

// WithSquares draws palette swatches as block glyphs instead of letters.
func WithSquares(on bool) Option {
	return func(o *options) { o.squares = on }
}

// WithLogger routes the interaction loop's debug output to fn.
func WithLogger(fn LogFunc) Option {
	return func(o *options) { o.logf = fn }
}
