// ABOUTME: Settings loading with global + project YAML merge and POPUP_* env overrides
// ABOUTME: Project values override global ones; environment overrides both

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Defaults applied before any file is read.
const (
	DefaultWrap     = 32
	DefaultShading  = "░"
	DefaultTheme    = "default"
	DefaultLogLevel = "info"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Settings holds the merged configuration.
type Settings struct {
	Wrap     int    `yaml:"wrap,omitempty"`
	Shading  string `yaml:"shading,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
	Kind     string `yaml:"kind,omitempty"`
	Squares  bool   `yaml:"squares,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Wrap:     DefaultWrap,
		Shading:  DefaultShading,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads the global and project-local files, merges them onto the
// defaults, expands ${VAR} references, applies POPUP_* environment
// overrides, and validates the result.
func Load(projectRoot string) (*Settings, error) {
	return LoadFrom(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFrom is Load with explicit file paths. Missing files are skipped.
func LoadFrom(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	s := merge(merge(Defaults(), global), project)
	ResolveEnvVars(s)
	if err := ApplyEnv(s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero values of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.Wrap != 0 {
		result.Wrap = over.Wrap
	}
	if over.Shading != "" {
		result.Shading = over.Shading
	}
	if over.Theme != "" {
		result.Theme = over.Theme
	}
	if over.Kind != "" {
		result.Kind = over.Kind
	}
	if over.Squares {
		result.Squares = true
	}
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	if over.LogFile != "" {
		result.LogFile = over.LogFile
	}

	return &result
}

// Validate checks the wrap width, the shading glyph, and the log level.
func (s *Settings) Validate() error {
	if s.Wrap < 1 {
		return fmt.Errorf("%w: wrap must be at least 1, got %d", ErrInvalid, s.Wrap)
	}
	if utf8.RuneCountInString(s.Shading) != 1 {
		return fmt.Errorf("%w: shading must be a single character, got %q", ErrInvalid, s.Shading)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ShadingRune returns the shading glyph, falling back to the default.
func (s *Settings) ShadingRune() rune {
	r, _ := utf8.DecodeRuneInString(s.Shading)
	if r == utf8.RuneError {
		r, _ = utf8.DecodeRuneInString(DefaultShading)
	}
	return r
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, name)
}
