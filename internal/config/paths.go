package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencode-labs/opencode-wrapper/internal/branding"
)

// UserConfigFileName is the fixed file name inside the user config directory.
const UserConfigFileName = "config.yaml"

// Paths holds the resolved configuration file locations. They are computed
// fresh on every call and never cached.
type Paths struct {
	UserConfigDir     string `yaml:"user_config_dir" json:"user_config_dir"`
	UserConfigFile    string `yaml:"user_config_file" json:"user_config_file"`
	ProjectConfigFile string `yaml:"project_config_file" json:"project_config_file"`
}

// UserDir returns the per-user configuration directory. It checks the
// OPENENCODE_CONFIG_DIR environment variable first, then falls back to the
// platform config directory plus the application name. The directory is not
// created.
func UserDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, branding.AppDir()), nil
}

// ResolvePaths computes the configuration file locations. cwd selects the
// directory holding the project config file; when empty the process working
// directory is used. No filesystem entries are created or read.
func ResolvePaths(cwd string) (*Paths, error) {
	dir, err := UserDir()
	if err != nil {
		return nil, err
	}
	if cwd == "" {
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
	}
	return &Paths{
		UserConfigDir:     dir,
		UserConfigFile:    filepath.Join(dir, UserConfigFileName),
		ProjectConfigFile: filepath.Join(cwd, branding.ProjectFile()),
	}, nil
}
