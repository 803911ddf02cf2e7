package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestWriteDefault_CreatesFile(t *testing.T) {
	userDir := filepath.Join(t.TempDir(), "nested", "config-dir")
	t.Setenv("OPENENCODE_CONFIG_DIR", userDir)

	path, err := WriteDefault(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(userDir, "config.yaml") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written file should be valid YAML: %v", err)
	}
	if cfg.Model != DefaultModel || cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("written defaults wrong: %+v", cfg)
	}
	home, _ := os.UserHomeDir()
	if cfg.WorkspaceDir != filepath.Join(home, "opencode-workspace") {
		t.Errorf("workspace_dir should be expanded: %q", cfg.WorkspaceDir)
	}

	// Key order follows field declaration order.
	text := string(data)
	if strings.Index(text, "api_key") > strings.Index(text, "model") ||
		strings.Index(text, "model") > strings.Index(text, "max_tokens") ||
		strings.Index(text, "max_tokens") > strings.Index(text, "workspace_dir") {
		t.Errorf("unexpected key order:\n%s", text)
	}
}

func TestWriteDefault_NoOpWithoutForce(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv("OPENENCODE_CONFIG_DIR", userDir)

	path, err := WriteDefault(false)
	if err != nil {
		t.Fatal(err)
	}

	marker := []byte("model: custom-model\n")
	if err := os.WriteFile(path, marker, 0600); err != nil {
		t.Fatal(err)
	}

	again, err := WriteDefault(false)
	if err != nil {
		t.Fatal(err)
	}
	if again != path {
		t.Errorf("expected existing path %s, got %s", path, again)
	}

	data, _ := os.ReadFile(path)
	if string(data) != string(marker) {
		t.Error("second call without force should not touch the file")
	}
}

func TestWriteDefault_ForceOverwrites(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv("OPENENCODE_CONFIG_DIR", userDir)

	path, err := WriteDefault(false)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("model: custom-model\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteDefault(true); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "custom-model") {
		t.Error("force should overwrite existing content")
	}
	if !strings.Contains(string(data), DefaultModel) {
		t.Errorf("overwritten file should hold defaults:\n%s", data)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "" || cfg.Model != DefaultModel || cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if strings.HasPrefix(cfg.WorkspaceDir, "~") {
		t.Errorf("workspace_dir should be expanded, got %q", cfg.WorkspaceDir)
	}
}
