// ABOUTME: Root cobra command: persistent flags, config loading, logging, and theme setup
// ABOUTME: Flags override config files and POPUP_* environment variables

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termpopup/internal/config"
	pilog "github.com/mauromedda/termpopup/internal/log"
	"github.com/mauromedda/termpopup/pkg/popup"
	"github.com/mauromedda/termpopup/pkg/tui/theme"
)

// app carries the resolved settings from the root command to subcommands.
type app struct {
	settings *config.Settings

	title  string
	kind   string
	icon   string
	format string
	x, y   int
	tea    bool

	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		wrap     int
		shading  string
		themeArg string
		logLevel string
		logFile  string
	)

	root := &cobra.Command{
		Use:   "popup",
		Short: "Show modal popups in the terminal",
		Long: `popup draws a boxed dialog in the terminal and prints the result on stdout:
the key pressed, the option chosen, the text entered, or a palette index.

Settings are read from ~/.termpopup/config.yaml and ./.termpopup/config.yaml,
then POPUP_WRAP, POPUP_SHADING and POPUP_THEME, then flags.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot determine working directory: %w", err)
			}
			s, err := config.Load(cwd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("wrap") {
				s.Wrap = wrap
			}
			if flags.Changed("shading") {
				s.Shading = shading
			}
			if flags.Changed("theme") {
				s.Theme = themeArg
			}
			if flags.Changed("log-level") {
				s.LogLevel = logLevel
			}
			if flags.Changed("log-file") {
				s.LogFile = logFile
			}
			if a.kind == "" {
				a.kind = s.Kind
			}
			if err := s.Validate(); err != nil {
				return err
			}
			a.settings = s
			return a.setup()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&wrap, "wrap", config.DefaultWrap, "ideal content line width")
	pf.StringVar(&shading, "shading", config.DefaultShading, "shadow character")
	pf.StringVar(&themeArg, "theme", config.DefaultTheme, "builtin theme name or YAML theme file")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	pf.StringVar(&logFile, "log-file", "", "append log lines to this file")
	pf.StringVarP(&a.title, "title", "t", "", "title shown in the top border")
	pf.StringVarP(&a.kind, "kind", "k", "", "info, question, warning, error or custom")
	pf.StringVar(&a.icon, "icon", "", "override the kind's icon")
	pf.StringVar(&a.format, "format", "", `override the icon color, e.g. "92m"`)
	pf.IntVar(&a.x, "x", popup.Auto, "left column, -1 to centre")
	pf.IntVar(&a.y, "y", popup.Auto, "top row, -1 to centre")
	pf.BoolVar(&a.tea, "tea", false, "run inside a Bubble Tea program")

	root.AddCommand(
		newMessageCmd(a),
		newSelectCmd(a),
		newPromptCmd(a),
		newPaletteCmd(a),
		newDemoCmd(a),
	)
	return root
}

// setup applies the log and theme settings.
func (a *app) setup() error {
	level, err := config.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	pilog.SetLevel(level)
	if a.settings.LogFile != "" {
		closeLog, err := pilog.OpenFile(a.settings.LogFile)
		if err != nil {
			return err
		}
		a.closeLog = closeLog
	}

	th, err := resolveTheme(a.settings.Theme)
	if err != nil {
		return err
	}
	theme.Set(th)
	pilog.Debug("theme %s, wrap %d, shading %q", th.Name, a.settings.Wrap, a.settings.Shading)
	return nil
}

// resolveTheme accepts a builtin name, a path, or the bare name of a
// file in the user themes directory.
func resolveTheme(name string) (*theme.Theme, error) {
	if theme.Builtin(name) == nil && !strings.ContainsRune(name, filepath.Separator) && filepath.Ext(name) == "" {
		candidate := filepath.Join(config.ThemesDir(), name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			name = candidate
		}
	}
	th, err := theme.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return th, nil
}

// options builds the popup options shared by every subcommand.
func (a *app) options() ([]popup.Option, error) {
	opts := []popup.Option{
		popup.WithWrap(a.settings.Wrap),
		popup.WithContext(popup.DefaultContext().WithShading(a.settings.ShadingRune())),
		popup.WithLogger(pilog.Debug),
	}
	if a.title != "" {
		opts = append(opts, popup.WithTitle(a.title))
	}
	if a.kind != "" {
		k, err := popup.ParseKind(a.kind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, popup.WithKind(k))
	}
	if a.icon != "" {
		r, _ := utf8.DecodeRuneInString(a.icon)
		opts = append(opts, popup.WithIcon(r))
	}
	if a.format != "" {
		opts = append(opts, popup.WithFormat(a.format))
	}
	return opts, nil
}
