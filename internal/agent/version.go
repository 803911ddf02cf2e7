package agent

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinAgentVersion is the oldest agent release the wrapper is known to work
// with. The doctor warns below it but does not refuse to run.
const MinAgentVersion = "0.1.0"

// Version runs `<executable> --version` and parses the reported version.
func (r *Runner) Version(ctx context.Context) (*semver.Version, error) {
	bin, err := exec.LookPath(r.Executable)
	if err != nil {
		return nil, &NotFoundError{Executable: r.Executable, Err: err}
	}
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("querying %s version: %w", r.Executable, err)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the first semver token from version output,
// tolerating a "v" prefix and surrounding text like "opencode 1.2.3 (linux)".
func ParseVersion(output string) (*semver.Version, error) {
	for _, field := range strings.Fields(output) {
		v, err := semver.NewVersion(strings.TrimPrefix(field, "v"))
		if err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
}

// MeetsMinimum reports whether v is at least MinAgentVersion.
func MeetsMinimum(v *semver.Version) bool {
	return v.Compare(semver.MustParse(MinAgentVersion)) >= 0
}
