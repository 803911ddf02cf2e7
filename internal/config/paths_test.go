package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUserDir_EnvOverride(t *testing.T) {
	t.Setenv("OPENENCODE_CONFIG_DIR", "/tmp/test-config")
	dir, err := UserDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/test-config" {
		t.Errorf("expected /tmp/test-config, got %s", dir)
	}
}

func TestUserDir_Default(t *testing.T) {
	t.Setenv("OPENENCODE_CONFIG_DIR", "")
	dir, err := UserDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no platform config dir available: %v", err)
	}
	expected := filepath.Join(base, "opencode-wrapper")
	if dir != expected {
		t.Errorf("expected %s, got %s", expected, dir)
	}
}

func TestResolvePaths(t *testing.T) {
	t.Setenv("OPENENCODE_CONFIG_DIR", "/tmp/cfg")
	paths, err := ResolvePaths("/work/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paths.UserConfigDir != "/tmp/cfg" {
		t.Errorf("user config dir: got %s", paths.UserConfigDir)
	}
	if paths.UserConfigFile != "/tmp/cfg/config.yaml" {
		t.Errorf("user config file: got %s", paths.UserConfigFile)
	}
	if paths.ProjectConfigFile != "/work/project/.opencode.yaml" {
		t.Errorf("project config file: got %s", paths.ProjectConfigFile)
	}
}

func TestResolvePaths_DefaultCwd(t *testing.T) {
	t.Setenv("OPENENCODE_CONFIG_DIR", "/tmp/cfg")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	paths, err := ResolvePaths("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := filepath.Join(cwd, ".opencode.yaml")
	if paths.ProjectConfigFile != expected {
		t.Errorf("expected %s, got %s", expected, paths.ProjectConfigFile)
	}
}
