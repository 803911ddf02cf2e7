package agent

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/opencode-labs/opencode-wrapper/internal/branding"
	"github.com/opencode-labs/opencode-wrapper/internal/config"
)

// RunResult captures the outcome of one agent invocation. Stdout and Stderr
// hold the complete captured streams in captured mode; in interactive mode
// they are empty and Captured is false.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Captured bool
}

// Runner invokes the agent executable with the wrapper-managed environment.
type Runner struct {
	Executable string
	// WorkingDir optionally overrides the child's working directory.
	WorkingDir string
}

// NewRunner returns a Runner for the branded agent executable.
func NewRunner() *Runner {
	return &Runner{Executable: branding.AgentExecutable()}
}

// Run executes the agent with the given pass-through args, unmodified and
// unvalidated. A non-zero child exit code is reported in the result, not as
// an error; the one start failure callers must distinguish is the executable
// missing from PATH, returned as *NotFoundError.
func (r *Runner) Run(ctx context.Context, cfg *config.Config, args []string, interactive bool) (*RunResult, error) {
	bin, err := exec.LookPath(r.Executable)
	if err != nil {
		return nil, &NotFoundError{Executable: r.Executable, Err: err}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Env = buildEnv(cfg)
	cmd.Dir = r.WorkingDir

	log.Debug("invoking agent",
		"executable", bin,
		"args", strings.Join(args, " "),
		"interactive", interactive)

	result := &RunResult{Captured: !interactive}

	var stdoutBuf, stderrBuf bytes.Buffer
	if interactive {
		// The child owns the terminal for its duration.
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	err = cmd.Run()
	result.Stdout = stdoutBuf.String()
	result.Stderr = stderrBuf.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("running %s: %w", r.Executable, err)
	}
	return result, nil
}

// buildEnv copies the current process environment and overlays the
// OPENENCODE_* variables derived from the configuration. The overlay always
// wins over inherited same-named variables. The API key is forwarded only
// when present.
func buildEnv(cfg *config.Config) []string {
	env := os.Environ()
	if cfg.APIKey != "" {
		env = setEnv(env, branding.EnvVar("API_KEY"), cfg.APIKey)
	}
	env = setEnv(env, branding.EnvVar("MODEL"), cfg.Model)
	env = setEnv(env, branding.EnvVar("MAX_TOKENS"), strconv.Itoa(cfg.MaxTokens))
	env = setEnv(env, branding.EnvVar("WORKSPACE_DIR"), cfg.WorkspaceDir)
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
