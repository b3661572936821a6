package identity

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shikhar413/openmc-performance/pkg/command"
)

// ErrIdentityUnavailable is returned when the executable under test cannot
// report its version and commit hash. Without an identity there is no safe
// cache key, so callers must abort.
var ErrIdentityUnavailable = errors.New("executable identity unavailable")

// VersionInfo holds the identifying data reported by the executable itself.
type VersionInfo struct {
	Version    string
	CommitHash string
}

// BuildInfo extends VersionInfo with the commit date taken from the source
// checkout the executable was built from.
type BuildInfo struct {
	CommitHash string
	CommitDate time.Time
	Version    string
}

// ProbeVersion runs the executable with --version and parses the version
// and commit hash from the first two output lines.
func ProbeVersion(ctx context.Context, runner command.Runner, executable string) (info VersionInfo, err error) {
	stdout, err := runner.Output(ctx, command.RunOptions{}, executable, "--version")
	if err != nil {
		return info, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	lines := strings.Split(stdout, "\n")
	if len(lines) < 2 || !strings.Contains(lines[0], "OpenMC version") || !strings.Contains(lines[1], "Commit hash") {
		return info, fmt.Errorf("%w: unexpected --version output from %v", ErrIdentityUnavailable, executable)
	}

	info.Version = strings.TrimSpace(lastField(lines[0], "version "))
	info.CommitHash = strings.TrimSpace(lastField(lines[1], ": "))
	if info.Version == "" || info.CommitHash == "" {
		return info, fmt.Errorf("%w: unexpected --version output from %v", ErrIdentityUnavailable, executable)
	}

	return info, nil
}

// ProbeBuildInfo returns the commit hash, commit date and version of the
// build the executable came from. The repository root is assumed two levels
// above the executable.
func ProbeBuildInfo(ctx context.Context, runner command.Runner, executable string) (info BuildInfo, err error) {
	versionInfo, err := ProbeVersion(ctx, runner, executable)
	if err != nil {
		return
	}

	gitDir := filepath.Join(filepath.Dir(executable), "..", "..", ".git")
	stdout, err := runner.Output(ctx, command.RunOptions{}, "git", "--git-dir", gitDir, "show", "-s", "--pretty=format:%H|%ci")
	if err != nil {
		return info, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	parts := strings.SplitN(strings.TrimSpace(stdout), "|", 2)
	if len(parts) != 2 {
		return info, fmt.Errorf("%w: unexpected git show output", ErrIdentityUnavailable)
	}

	commitDate, err := time.Parse("2006-01-02 15:04:05 -0700", parts[1])
	if err != nil {
		return info, fmt.Errorf("%w: unparsable commit date %q", ErrIdentityUnavailable, parts[1])
	}

	info.CommitHash = parts[0]
	info.CommitDate = commitDate.UTC()
	info.Version = fmt.Sprintf("Version %v", versionInfo.Version)

	return info, nil
}

// ProbeEnvironment returns a short description of the host OS, taken from
// lsb_release, for the environment field of uploaded records.
func ProbeEnvironment(ctx context.Context, runner command.Runner) (string, error) {
	stdout, err := runner.Output(ctx, command.RunOptions{}, "lsb_release", "-a")
	if err != nil {
		return "", err
	}

	var osName, osVersion string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.Contains(line, "Distributor ID:") {
			osName = strings.TrimSpace(lastField(line, ":"))
		} else if strings.Contains(line, "Release:") {
			osVersion = strings.TrimSpace(lastField(line, ":"))
		}
	}
	if osName == "" || osVersion == "" {
		return "", fmt.Errorf("could not parse lsb_release output")
	}

	return fmt.Sprintf("%v %v", osName, osVersion), nil
}

func lastField(line, sep string) string {
	parts := strings.Split(line, sep)
	return parts[len(parts)-1]
}
