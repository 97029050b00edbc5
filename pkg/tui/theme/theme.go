// ABOUTME: Semantic color theme types for popups: Color, Palette, Theme
// ABOUTME: Color wraps raw SGR expressions; ParseColor accepts "94m", "\x1b[94m" or "\e[94m"

package theme

import (
	"fmt"
	"strings"
)

// Color represents a terminal style expressed as a raw SGR escape code.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// ParseColor turns a user-facing styling expression into a Color.
// The leading CSI may be omitted ("94m", "5;97m") or written literally
// ("\e[94m", "\033[94m", "\x1b[94m"); a missing trailing "m" is added.
func ParseColor(expr string) Color {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Color{}
	}
	for _, lit := range []string{`\e`, `\033`, `\x1b`, `\u001b`} {
		expr = strings.ReplaceAll(expr, lit, "\x1b")
	}
	if !strings.HasPrefix(expr, "\x1b[") {
		expr = "\x1b[" + expr
	}
	if c := expr[len(expr)-1]; c >= '0' && c <= '9' {
		expr += "m"
	}
	return Color{code: expr}
}

// Apply wraps text with the color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// IsZero reports whether the color carries no styling.
func (c Color) IsZero() bool {
	return c.code == ""
}

// Foreground16 returns the foreground color for a 16-color palette index:
// 0-7 map to SGR 30-37, 8-15 to the bright range 90-97.
func Foreground16(i int) Color {
	if i < 8 {
		return NewColor(fmt.Sprintf("\x1b[%dm", 30+i))
	}
	return NewColor(fmt.Sprintf("\x1b[%dm", 90+i-8))
}

// Background16 returns the background color for a 16-color palette index:
// 0-7 map to SGR 40-47, 8-15 to the bright range 100-107.
func Background16(i int) Color {
	if i < 8 {
		return NewColor(fmt.Sprintf("\x1b[%dm", 40+i))
	}
	return NewColor(fmt.Sprintf("\x1b[%dm", 100+i-8))
}

// Palette holds all semantic colors a popup frame uses.
type Palette struct {
	// Kind icons
	Info     Color
	Question Color
	Warning  Color
	Error    Color
	Custom   Color

	// Frame
	Border Color
	Shadow Color

	// Interaction
	Emphasis  Color // prompt text and placeholder
	Selection Color // highlighted select row, truncation marker

	// Character counter
	CounterWarn  Color
	CounterAlert Color

	// Diagnostics
	FitError Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the classic console popup colors.
func DefaultPalette() Palette {
	return Palette{
		Info:     NewColor("\x1b[94m"),
		Question: NewColor("\x1b[96m"),
		Warning:  NewColor("\x1b[93m"),
		Error:    NewColor("\x1b[91m"),
		Custom:   NewColor("\x1b[5;97m"),

		Border: Color{},
		Shadow: Color{},

		Emphasis:  NewColor("\x1b[1m"),
		Selection: NewColor("\x1b[7m"),

		CounterWarn:  NewColor("\x1b[93m"),
		CounterAlert: NewColor("\x1b[91m"),

		FitError: NewColor("\x1b[91m"),
	}
}
