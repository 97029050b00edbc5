// ABOUTME: Standard filesystem paths for termpopup configuration
// ABOUTME: Resolves ~/.termpopup/ for global and .termpopup/ for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".termpopup"
	projectDirName = ".termpopup"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.termpopup/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.termpopup/ under projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// ThemesDir returns the directory searched for theme files named by bare name.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}
