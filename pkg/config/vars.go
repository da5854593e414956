package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "contentsync"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/contentsync by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/contentsync/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/contentsync/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SheetsFilePath returns the full path to the sheets.yaml file which
// describes where each content table comes from.
// Returns ~/.config/contentsync/sheets.yaml by default.
func SheetsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sheets.yaml")
}
