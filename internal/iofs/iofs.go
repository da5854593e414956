// Package iofs owns the tool's file system surface: the config
// directory layout, first-run seeding of the YAML templates, and
// writing the generated JSON document.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/unlockegypt/contentsync/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed sheets.yaml
var SheetsYAML string

// EnsureDirs creates the config and log directories if missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile seeds the embedded config.yaml on first run.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureSheetsFile seeds the embedded sheets.yaml on first run.
func EnsureSheetsFile(homeDir string) error {
	sheetsPath := config.SheetsFilePath(homeDir)

	if _, err := os.Stat(sheetsPath); err == nil {
		return nil
	}

	if err := os.WriteFile(sheetsPath, []byte(SheetsYAML), 0644); err != nil {
		return CopyFileError(sheetsPath, err)
	}

	return nil
}

// WriteDocument writes the encoded JSON document into each destination
// directory, creating directories as needed. Returns the written
// paths.
func WriteDocument(
	data []byte,
	fileName string,
	dirs ...string,
) ([]string, error) {
	var paths []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := touchDir(dir); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, fileName)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, WriteFileError(path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
