package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// validate coerces and checks the merged mapping into a Config. Unknown keys
// are ignored. All field failures are collected before returning, so a single
// pass reports every invalid field at once.
func validate(merged map[string]any) (*Config, error) {
	cfg := &Config{
		Model:        DefaultModel,
		MaxTokens:    DefaultMaxTokens,
		WorkspaceDir: DefaultWorkspaceDir,
	}
	var fieldErrs []error

	// A nil api_key (YAML null or a bare "api_key:" line) means no credential,
	// same as an absent key.
	if v, ok := merged[KeyAPIKey]; ok && v != nil {
		s, err := asString(KeyAPIKey, v)
		if err != nil {
			fieldErrs = append(fieldErrs, err)
		} else {
			cfg.APIKey = s
		}
	}

	if v, ok := merged[KeyModel]; ok {
		s, err := asString(KeyModel, v)
		if err != nil {
			fieldErrs = append(fieldErrs, err)
		} else {
			cfg.Model = s
		}
	}

	if v, ok := merged[KeyMaxTokens]; ok {
		n, err := asInt(KeyMaxTokens, v)
		if err != nil {
			fieldErrs = append(fieldErrs, err)
		} else {
			cfg.MaxTokens = n
		}
	}
	if cfg.MaxTokens < MinMaxTokens || cfg.MaxTokens > MaxMaxTokens {
		fieldErrs = append(fieldErrs, FieldError{
			Field: KeyMaxTokens,
			Msg:   fmt.Sprintf("must be between %d and %d, got %d", MinMaxTokens, MaxMaxTokens, cfg.MaxTokens),
		})
	}

	if v, ok := merged[KeyWorkspaceDir]; ok {
		s, err := asString(KeyWorkspaceDir, v)
		if err != nil {
			fieldErrs = append(fieldErrs, err)
		} else {
			cfg.WorkspaceDir = s
		}
	}
	if ws, err := expandHome(cfg.WorkspaceDir); err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: KeyWorkspaceDir, Msg: err.Error()})
	} else {
		cfg.WorkspaceDir = ws
	}

	if len(fieldErrs) > 0 {
		return nil, &Error{Msg: "invalid configuration", Err: errors.Join(fieldErrs...)}
	}
	return cfg, nil
}

func asString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", FieldError{Field: field, Msg: fmt.Sprintf("expected a string, got %T", v)}
	}
	return s, nil
}

// asInt accepts native integers and numeric strings (YAML-quoted values).
func asInt(field string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, FieldError{Field: field, Msg: fmt.Sprintf("expected an integer, got %q", n)}
		}
		return parsed, nil
	default:
		return 0, FieldError{Field: field, Msg: fmt.Sprintf("expected an integer, got %T", v)}
	}
}

// expandHome replaces a leading ~ with the current user's home directory.
// Paths without the prefix pass through unchanged.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
