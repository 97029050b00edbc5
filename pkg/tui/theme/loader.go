// ABOUTME: YAML theme file loading with default fallback for unset colors
// ABOUTME: Resolve accepts either a builtin theme name or a path to a YAML file

package theme

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// yamlPalette is the file representation of a Palette. Values are
// styling expressions understood by ParseColor.
type yamlPalette struct {
	Info     string `yaml:"info"`
	Question string `yaml:"question"`
	Warning  string `yaml:"warning"`
	Error    string `yaml:"error"`
	Custom   string `yaml:"custom"`

	Border string `yaml:"border"`
	Shadow string `yaml:"shadow"`

	Emphasis  string `yaml:"emphasis"`
	Selection string `yaml:"selection"`

	CounterWarn  string `yaml:"counter_warn"`
	CounterAlert string `yaml:"counter_alert"`

	FitError string `yaml:"fit_error"`
}

type yamlTheme struct {
	Name    string      `yaml:"name"`
	Palette yamlPalette `yaml:"palette"`
}

// LoadFile reads a YAML theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	return &Theme{
		Name:    yt.Name,
		Palette: convertPalette(yt.Palette, DefaultPalette()),
	}, nil
}

// Resolve returns the builtin theme called nameOrPath, or loads it as a file.
func Resolve(nameOrPath string) (*Theme, error) {
	if nameOrPath == "" {
		return Builtin("default"), nil
	}
	if th := Builtin(nameOrPath); th != nil {
		return th, nil
	}
	return LoadFile(nameOrPath)
}

// convertPalette maps yamlPalette fields onto a Palette, using base for empty fields.
// Fields are matched by name so the two structs must stay in step.
func convertPalette(yp yamlPalette, base Palette) Palette {
	p := base

	ypv := reflect.ValueOf(yp)
	pv := reflect.ValueOf(&p).Elem()
	ypt := ypv.Type()

	for i := range ypt.NumField() {
		expr := ypv.Field(i).String()
		if expr == "" {
			continue
		}
		pf := pv.FieldByName(ypt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(ParseColor(expr)))
		}
	}

	return p
}
