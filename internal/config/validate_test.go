package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_CollectsAllFieldErrors(t *testing.T) {
	_, err := validate(map[string]any{
		"model":      123,
		"max_tokens": "notanumber",
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.Error, got %T", err)
	}
	msg := cfgErr.Err.Error()
	if !strings.Contains(msg, "model") || !strings.Contains(msg, "max_tokens") {
		t.Errorf("expected both field errors reported, got %q", msg)
	}
}

func TestValidate_NonStringWorkspaceDir(t *testing.T) {
	_, err := validate(map[string]any{"workspace_dir": 42})
	if err == nil {
		t.Fatal("expected validation failure for non-string workspace_dir")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~", home},
		{"~/proj", filepath.Join(home, "proj")},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
		{"~user/other", "~user/other"}, // ~user expansion is not supported
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandHome(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestAsInt(t *testing.T) {
	if n, err := asInt("max_tokens", 7); err != nil || n != 7 {
		t.Errorf("int: got %d, %v", n, err)
	}
	if n, err := asInt("max_tokens", int64(9)); err != nil || n != 9 {
		t.Errorf("int64: got %d, %v", n, err)
	}
	if n, err := asInt("max_tokens", " 42 "); err != nil || n != 42 {
		t.Errorf("numeric string: got %d, %v", n, err)
	}
	if _, err := asInt("max_tokens", 1.5); err == nil {
		t.Error("float should be rejected")
	}
	if _, err := asInt("max_tokens", "x"); err == nil {
		t.Error("non-numeric string should be rejected")
	}
}
