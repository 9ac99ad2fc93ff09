package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths and as the
	// application_name of database sessions.
	AppName = "squadcheck"

	// EnvFile is the name of the dotenv file read from the working
	// directory when no explicit file is given.
	EnvFile = ".env"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/squadcheck by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/squadcheck/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/squadcheck/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
