// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, and Go's //go:embed bakes it
// into the binary. Every name the wrapper exposes to the outside world (the
// config directory, the project file, the agent executable, the environment
// prefix) resolves through here so a rebrand touches exactly one file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	AppDir          string `yaml:"app_dir"`
	ProjectFile     string `yaml:"project_file"`
	AgentExecutable string `yaml:"agent_executable"`
	EnvPrefix       string `yaml:"env_prefix"`
	GoModule        string `yaml:"go_module"`
	GitHubRepo      string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		// The env prefix spelling OPENENCODE is what the opencode agent
		// actually reads; do not "fix" it to OPENCODE.
		defaults = brand{
			CLIName:         "opencode-wrapper",
			DisplayName:     "Opencode Wrapper",
			Description:     "Configuration-managed launcher for the opencode LLM agent",
			AppDir:          "opencode-wrapper",
			ProjectFile:     ".opencode.yaml",
			AgentExecutable: "opencode",
			EnvPrefix:       "OPENENCODE",
			GoModule:        "github.com/opencode-labs/opencode-wrapper",
			GitHubRepo:      "opencode-labs/opencode-wrapper",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "opencode-wrapper").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// AppDir returns the application directory name under the platform config dir.
func AppDir() string { load(); return defaults.AppDir }

// ProjectFile returns the project-level config file name (e.g., ".opencode.yaml").
func ProjectFile() string { load(); return defaults.ProjectFile }

// AgentExecutable returns the agent executable name located via PATH.
func AgentExecutable() string { load(); return defaults.AgentExecutable }

// EnvPrefix returns the environment variable prefix (e.g., "OPENENCODE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Informational; not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g.,
// EnvVar("API_KEY") → "OPENENCODE_API_KEY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
