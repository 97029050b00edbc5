// ABOUTME: Environment handling for settings: ${VAR} expansion and POPUP_* overrides
// ABOUTME: Unset ${VAR} references expand to empty; overrides replace file values

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Environment variables that override file settings.
const (
	EnvWrap    = "POPUP_WRAP"
	EnvShading = "POPUP_SHADING"
	EnvTheme   = "POPUP_THEME"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Shading = expandEnv(s.Shading)
	s.Theme = expandEnv(s.Theme)
	s.Kind = expandEnv(s.Kind)
	s.LogLevel = expandEnv(s.LogLevel)
	s.LogFile = expandEnv(s.LogFile)
}

// ApplyEnv overrides settings from POPUP_WRAP, POPUP_SHADING and POPUP_THEME.
func ApplyEnv(s *Settings) error {
	if v, ok := os.LookupEnv(EnvWrap); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvWrap, v)
		}
		s.Wrap = n
	}
	if v, ok := os.LookupEnv(EnvShading); ok && v != "" {
		s.Shading = v
	}
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		s.Theme = v
	}
	return nil
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
