package agent

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/opencode-labs/opencode-wrapper/internal/config"
)

// Check inspects the wrapper's prerequisites and reports one row per check.
// When fix is true it repairs what it safely can: a missing workspace
// directory is created and a loose user config file mode is tightened.
func Check(w io.Writer, fix bool) error {
	ctx := context.Background()
	r := NewRunner()

	fmt.Fprintln(w, "Agent check:")
	bin, err := exec.LookPath(r.Executable)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found in PATH\n", r.Executable)
		fmt.Fprintf(w, "         Install the %s agent and ensure it is on PATH\n", r.Executable)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s\n", bin)
		checkAgentVersion(ctx, w, r)
	}

	paths, err := config.ResolvePaths("")
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nConfiguration check:")
	checkUserConfig(w, paths.UserConfigFile, fix)
	checkProjectConfig(w, paths.ProjectConfigFile)

	result, err := config.Load("")
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] merged configuration: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] merged configuration is valid (model %s, max_tokens %d)\n",
		result.Config.Model, result.Config.MaxTokens)

	checkWorkspaceDir(w, result.Config.WorkspaceDir, fix)
	return nil
}

func checkAgentVersion(ctx context.Context, w io.Writer, r *Runner) {
	v, err := r.Version(ctx)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] could not determine %s version: %v\n", r.Executable, err)
		return
	}
	if !MeetsMinimum(v) {
		fmt.Fprintf(w, "  [WARN] %s version %s is older than the supported minimum %s\n",
			r.Executable, v, MinAgentVersion)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s version %s\n", r.Executable, v)
}

func checkUserConfig(w io.Writer, path string, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		fmt.Fprintln(w, "         Run 'config init' to create it")
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}

	if lint, lintErr := config.LintFile(path); lintErr != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, lintErr)
		return
	} else if !lint.Valid {
		for _, issue := range lint.Issues {
			fmt.Fprintf(w, "  [WARN] %s: %s %s\n", path, issue.Path, issue.Message)
		}
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)

	// The user config file may hold an API key; keep it owner-only.
	if runtime.GOOS != "windows" {
		perm := info.Mode().Perm()
		if perm != 0600 {
			fmt.Fprintf(w, "  [WARN] %s has permissions %o (expected 600)\n", path, perm)
			if fix {
				if chErr := os.Chmod(path, 0600); chErr != nil {
					fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", path, chErr)
					return
				}
				fmt.Fprintf(w, "  [FIX ] Fixed permissions on %s to 600\n", path)
			}
		}
	}
}

func checkProjectConfig(w io.Writer, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [ OK ] %s not present (optional)\n", path)
		return
	}
	if lint, err := config.LintFile(path); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	} else if !lint.Valid {
		for _, issue := range lint.Issues {
			fmt.Fprintf(w, "  [WARN] %s: %s %s\n", path, issue.Path, issue.Message)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}

func checkWorkspaceDir(w io.Writer, path string, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] workspace %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, 0755); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
		}
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] workspace %s: %v\n", path, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] workspace %s exists but is not a directory\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] workspace %s exists\n", path)
}
