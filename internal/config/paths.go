package config

import (
	"os"
	"path/filepath"
)

const (
	ConfigFileName = "config.toml"
	SettingsDir    = ".config/freecell"
)

// SettingsPath returns the path to the user's settings file, or "" when the
// home directory cannot be determined.
func SettingsPath() string {
	dir := SettingsDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFileName)
}

// SettingsDirPath returns the directory holding the settings file.
func SettingsDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, SettingsDir)
}
