package config

import (
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/opencode-labs/opencode-wrapper/internal/branding"
)

// Source records one file-based configuration origin for introspection.
// The merge never consumes Source values; it folds its own layer list.
type Source struct {
	Path   string         `yaml:"path" json:"path"`
	Exists bool           `yaml:"exists" json:"exists"`
	Loaded bool           `yaml:"loaded" json:"loaded"`
	Data   map[string]any `yaml:"data" json:"data"`
}

// LoadResult pairs the effective configuration with per-source provenance,
// ordered user file then project file.
type LoadResult struct {
	Config  *Config  `yaml:"config" json:"config"`
	Sources []Source `yaml:"sources" json:"sources"`
}

// layer is one named mapping in the precedence list. Later layers override
// keys from earlier ones.
type layer struct {
	name string
	data map[string]any
}

// Load resolves paths, reads the user file, the project file, and the
// environment, merges them in ascending precedence, and validates the result.
// It either returns a fully validated Config or fails entirely.
func Load(cwd string) (*LoadResult, error) {
	paths, err := ResolvePaths(cwd)
	if err != nil {
		return nil, err
	}

	userData, err := readYAMLMap(paths.UserConfigFile)
	if err != nil {
		return nil, err
	}
	projectData, err := readYAMLMap(paths.ProjectConfigFile)
	if err != nil {
		return nil, err
	}
	envData, err := readEnv()
	if err != nil {
		return nil, err
	}

	sources := []Source{
		{Path: paths.UserConfigFile, Exists: fileExists(paths.UserConfigFile), Loaded: len(userData) > 0, Data: userData},
		{Path: paths.ProjectConfigFile, Exists: fileExists(paths.ProjectConfigFile), Loaded: len(projectData) > 0, Data: projectData},
	}

	// Ascending precedence; adding a fourth source is one line here.
	merged := merge([]layer{
		{name: "user", data: userData},
		{name: "project", data: projectData},
		{name: "environment", data: envData},
	})

	cfg, err := validate(merged)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Config: cfg, Sources: sources}, nil
}

// merge folds the layer list left to right, later entries overwriting keys of
// earlier ones. The config shape is flat, so no deep merging is attempted.
func merge(layers []layer) map[string]any {
	out := make(map[string]any)
	for _, l := range layers {
		for k, v := range l.data {
			out[k] = v
		}
	}
	return out
}

// readYAMLMap reads a config file as a top-level mapping. A missing file
// yields an empty mapping; malformed YAML or a non-mapping document is an
// error naming the file.
func readYAMLMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, &Error{Path: path, Msg: "reading config file", Err: err}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Path: path, Msg: "invalid YAML", Err: err}
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Path: path, Msg: "top level must be a mapping"}
	}
	return m, nil
}

// readEnv collects OPENENCODE_* overrides into a mapping. Unset or empty
// variables contribute no key. A non-integer MAX_TOKENS is a hard failure,
// never a silent skip.
func readEnv() (map[string]any, error) {
	env := make(map[string]any)
	if v := os.Getenv(branding.EnvVar("API_KEY")); v != "" {
		env[KeyAPIKey] = v
	}
	if v := os.Getenv(branding.EnvVar("MODEL")); v != "" {
		env[KeyModel] = v
	}
	if v := os.Getenv(branding.EnvVar("MAX_TOKENS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &Error{Var: branding.EnvVar("MAX_TOKENS"), Msg: "must be an integer", Err: err}
		}
		env[KeyMaxTokens] = n
	}
	if v := os.Getenv(branding.EnvVar("WORKSPACE_DIR")); v != "" {
		env[KeyWorkspaceDir] = v
	}
	return env, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
