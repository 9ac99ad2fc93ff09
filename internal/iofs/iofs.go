// Package iofs prepares the directories and files squadcheck keeps in
// the user's home directory.
package iofs

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"

	"github.com/gnames/squadcheck/pkg/config"
)

// ConfigYAML is the documented default configuration.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates the configuration and log directories of homeDir.
// Existing directories are left as they are.
func EnsureDirs(homeDir string) error {
	for _, dir := range []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return CreateDirError(dir, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user
// already has one. A user's file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return CopyFileError(path, err)
	}

	_, err = f.WriteString(ConfigYAML)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
