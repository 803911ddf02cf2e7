package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// File permissions for written configuration. The user config file may hold
// an API key, so it is created owner-readable only.
const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0600
)

// WriteDefault writes a default user config file and returns its path. When
// the file already exists and force is false, the existing file is left
// untouched and its path returned.
func WriteDefault(force bool) (string, error) {
	paths, err := ResolvePaths("")
	if err != nil {
		return "", err
	}
	if !force {
		if _, err := os.Stat(paths.UserConfigFile); err == nil {
			return paths.UserConfigFile, nil
		}
	}

	if err := os.MkdirAll(paths.UserConfigDir, dirPerm); err != nil {
		return "", &Error{Path: paths.UserConfigDir, Msg: "creating config directory", Err: err}
	}

	cfg, err := Defaults()
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling default config: %w", err)
	}
	if err := os.WriteFile(paths.UserConfigFile, data, filePerm); err != nil {
		return "", &Error{Path: paths.UserConfigFile, Msg: "writing config file", Err: err}
	}
	return paths.UserConfigFile, nil
}
