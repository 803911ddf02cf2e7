package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/opencode-labs/opencode-wrapper/internal/config"
)

// installFakeAgent writes a shell script named opencode into a temp dir and
// prepends that dir to PATH so LookPath finds it.
func installFakeAgent(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "opencode")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}

func testConfig() *config.Config {
	return &config.Config{
		APIKey:       "sk-test",
		Model:        "gpt-4",
		MaxTokens:    4096,
		WorkspaceDir: "/tmp/ws",
	}
}

func TestRun_Captured(t *testing.T) {
	installFakeAgent(t, `printf 'hello\n'; printf 'oops\n' >&2; exit 0`)

	res, err := NewRunner().Run(context.Background(), testConfig(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", res.ExitCode)
	}
	if !res.Captured {
		t.Error("expected Captured to be true")
	}
	if res.Stdout != "hello\n" {
		t.Errorf("expected stdout %q, got %q", "hello\n", res.Stdout)
	}
	if res.Stderr != "oops\n" {
		t.Errorf("expected stderr %q, got %q", "oops\n", res.Stderr)
	}
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	installFakeAgent(t, `exit 3`)

	res, err := NewRunner().Run(context.Background(), testConfig(), nil, false)
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", res.ExitCode)
	}
}

func TestRun_Interactive(t *testing.T) {
	installFakeAgent(t, `exit 5`)

	res, err := NewRunner().Run(context.Background(), testConfig(), nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 5 {
		t.Errorf("expected exit code 5, got %d", res.ExitCode)
	}
	if res.Captured {
		t.Error("interactive result should not be captured")
	}
	if res.Stdout != "" || res.Stderr != "" {
		t.Errorf("interactive result should carry no captured text, got %q / %q", res.Stdout, res.Stderr)
	}
}

func TestRun_PassesArgsThrough(t *testing.T) {
	installFakeAgent(t, `echo "$@"`)

	res, err := NewRunner().Run(context.Background(), testConfig(), []string{"chat", "--resume", "last"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "chat --resume last" {
		t.Errorf("args not passed through: %q", res.Stdout)
	}
}

func TestRun_EnvRoundTrip(t *testing.T) {
	installFakeAgent(t, `printf '%s|%s|%s|%s\n' "$OPENENCODE_API_KEY" "$OPENENCODE_MODEL" "$OPENENCODE_MAX_TOKENS" "$OPENENCODE_WORKSPACE_DIR"`)

	// Pre-existing variables must lose to the overlay.
	t.Setenv("OPENENCODE_MODEL", "stale-value")

	res, err := NewRunner().Run(context.Background(), testConfig(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "sk-test|gpt-4|4096|/tmp/ws\n"
	if res.Stdout != expected {
		t.Errorf("expected child env %q, got %q", expected, res.Stdout)
	}
}

func TestRun_ExecutableNotFound(t *testing.T) {
	// An empty PATH guarantees the lookup fails.
	t.Setenv("PATH", t.TempDir())

	_, err := NewRunner().Run(context.Background(), testConfig(), nil, false)
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if nfErr.Executable != "opencode" {
		t.Errorf("expected executable name opencode, got %q", nfErr.Executable)
	}
}

func TestBuildEnv_APIKeyOnlyWhenSet(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""

	env := buildEnv(cfg)
	for _, e := range env {
		if strings.HasPrefix(e, "OPENENCODE_API_KEY=") {
			t.Errorf("api key should not be forwarded when empty: %s", e)
		}
	}

	found := map[string]string{}
	for _, e := range env {
		if k, v, ok := strings.Cut(e, "="); ok {
			found[k] = v
		}
	}
	if found["OPENENCODE_MODEL"] != "gpt-4" {
		t.Errorf("OPENENCODE_MODEL: got %q", found["OPENENCODE_MODEL"])
	}
	if found["OPENENCODE_MAX_TOKENS"] != "4096" {
		t.Errorf("OPENENCODE_MAX_TOKENS: got %q", found["OPENENCODE_MAX_TOKENS"])
	}
	if found["OPENENCODE_WORKSPACE_DIR"] != "/tmp/ws" {
		t.Errorf("OPENENCODE_WORKSPACE_DIR: got %q", found["OPENENCODE_WORKSPACE_DIR"])
	}
}

func TestSetEnv(t *testing.T) {
	env := []string{"A=1", "B=2"}

	env = setEnv(env, "A", "replaced")
	if env[0] != "A=replaced" {
		t.Errorf("expected replacement, got %v", env)
	}
	if len(env) != 2 {
		t.Errorf("replacement should not grow the slice: %v", env)
	}

	env = setEnv(env, "C", "3")
	if len(env) != 3 || env[2] != "C=3" {
		t.Errorf("expected append, got %v", env)
	}
}
