// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Info:     NewColor("\x1b[38;5;117m"),
			Question: NewColor("\x1b[38;5;80m"),
			Warning:  NewColor("\x1b[38;5;221m"),
			Error:    NewColor("\x1b[38;5;203m"),
			Custom:   NewColor("\x1b[38;5;183m"),

			Border: NewColor("\x1b[38;5;245m"),
			Shadow: NewColor("\x1b[38;5;238m"),

			Emphasis:  NewColor("\x1b[1m\x1b[97m"),
			Selection: NewColor("\x1b[7m"),

			CounterWarn:  NewColor("\x1b[38;5;221m"),
			CounterAlert: NewColor("\x1b[38;5;203m"),

			FitError: NewColor("\x1b[38;5;203m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Info:     NewColor("\x1b[38;5;25m"),
			Question: NewColor("\x1b[38;5;30m"),
			Warning:  NewColor("\x1b[38;5;130m"),
			Error:    NewColor("\x1b[38;5;160m"),
			Custom:   NewColor("\x1b[38;5;91m"),

			Border: NewColor("\x1b[38;5;242m"),
			Shadow: NewColor("\x1b[38;5;250m"),

			Emphasis:  NewColor("\x1b[1m\x1b[30m"),
			Selection: NewColor("\x1b[7m"),

			CounterWarn:  NewColor("\x1b[38;5;130m"),
			CounterAlert: NewColor("\x1b[38;5;160m"),

			FitError: NewColor("\x1b[38;5;160m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Info:     NewColor("\x1b[1m"),
			Question: NewColor("\x1b[1m"),
			Warning:  NewColor("\x1b[1m\x1b[4m"),
			Error:    NewColor("\x1b[7m"),
			Custom:   NewColor("\x1b[5m"),

			Border: Color{},
			Shadow: NewColor("\x1b[2m"),

			Emphasis:  NewColor("\x1b[1m"),
			Selection: NewColor("\x1b[7m"),

			CounterWarn:  NewColor("\x1b[4m"),
			CounterAlert: NewColor("\x1b[1m\x1b[4m"),

			FitError: NewColor("\x1b[1m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
