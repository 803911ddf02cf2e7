package config

// Default values applied when no source provides a field.
const (
	DefaultModel        = "gpt-4"
	DefaultMaxTokens    = 4096
	DefaultWorkspaceDir = "~/opencode-workspace"
)

// Accepted range for max_tokens.
const (
	MinMaxTokens = 1
	MaxMaxTokens = 32000
)

// Keys recognized in config file mappings and environment overrides.
const (
	KeyAPIKey       = "api_key"
	KeyModel        = "model"
	KeyMaxTokens    = "max_tokens"
	KeyWorkspaceDir = "workspace_dir"
)

// KnownKeys lists the addressable config keys in field-declaration order.
var KnownKeys = []string{KeyAPIKey, KeyModel, KeyMaxTokens, KeyWorkspaceDir}

// Config is the validated, effective wrapper configuration. Written config
// files follow field-declaration order, so keep api_key first.
type Config struct {
	APIKey       string `yaml:"api_key" json:"api_key"`
	Model        string `yaml:"model" json:"model"`
	MaxTokens    int    `yaml:"max_tokens" json:"max_tokens"`
	WorkspaceDir string `yaml:"workspace_dir" json:"workspace_dir"`
}

// Defaults returns a Config built entirely from default values, with the
// workspace path already expanded to an absolute location under the home
// directory.
func Defaults() (*Config, error) {
	ws, err := expandHome(DefaultWorkspaceDir)
	if err != nil {
		return nil, err
	}
	return &Config{
		Model:        DefaultModel,
		MaxTokens:    DefaultMaxTokens,
		WorkspaceDir: ws,
	}, nil
}

func knownKey(key string) bool {
	for _, k := range KnownKeys {
		if k == key {
			return true
		}
	}
	return false
}
