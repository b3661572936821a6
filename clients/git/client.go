package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shikhar413/openmc-performance/pkg/command"
)

// Revision is the outcome of resolving a user-supplied revision or branch
// name against the repository.
type Revision struct {
	IsBranch bool
	// RevName is the name usable in further git commands: the remote-
	// qualified branch name for branches, the full hash for commits.
	RevName string
	// SHA is the full commit hash the name resolves to.
	SHA string
}

// Client is the interface towards the git repository the pipeline builds
// from
//go:generate mockgen -package=git -destination ./mock.go -source=client.go
type Client interface {
	Fetch(ctx context.Context) error
	ParseRevision(ctx context.Context, name string) (Revision, error)
	RevisionInfo(ctx context.Context, revName string) (sha string, date time.Time, err error)
	Checkout(ctx context.Context, revision string) error
}

// NewClient returns a git client operating on the given checkout directory.
func NewClient(runner command.Runner, repoDir, remote string) Client {
	return &client{
		runner:  runner,
		repoDir: repoDir,
		remote:  remote,
	}
}

type client struct {
	runner  command.Runner
	repoDir string
	remote  string
}

func (c *client) options() command.RunOptions {
	return command.RunOptions{Dir: c.repoDir}
}

func (c *client) Fetch(ctx context.Context) error {
	return c.runner.Run(ctx, c.options(), "git", "fetch")
}

func (c *client) ParseRevision(ctx context.Context, name string) (Revision, error) {
	branchRev := fmt.Sprintf("%v/%v", c.remote, name)

	result, stdout, err := c.runner.OutputNoCheck(ctx, c.options(), "git", "rev-parse", "--verify", branchRev)
	if err != nil {
		return Revision{}, err
	}
	if result.ExitCode == 0 {
		return Revision{IsBranch: true, RevName: branchRev, SHA: strings.TrimSpace(stdout)}, nil
	}

	result, stdout, err = c.runner.OutputNoCheck(ctx, c.options(), "git", "rev-parse", "--verify", name)
	if err != nil {
		return Revision{}, err
	}
	stdout = strings.TrimSpace(stdout)
	if result.ExitCode == 0 && strings.HasPrefix(stdout, name) {
		return Revision{IsBranch: false, RevName: stdout, SHA: stdout}, nil
	}

	return Revision{}, fmt.Errorf("unable to parse revision %q", name)
}

func (c *client) RevisionInfo(ctx context.Context, revName string) (sha string, date time.Time, err error) {
	stdout, err := c.runner.Output(ctx, c.options(), "git", "show", "-s", "--pretty=format:%H|%ci", fmt.Sprintf("%v^!", revName))
	if err != nil {
		return
	}

	parts := strings.SplitN(strings.TrimSpace(stdout), "|", 2)
	if len(parts) != 2 {
		err = fmt.Errorf("unexpected git show output %q", stdout)
		return
	}

	date, err = time.Parse("2006-01-02 15:04:05 -0700", parts[1])
	if err != nil {
		return
	}

	return parts[0], date.UTC(), nil
}

// Checkout moves the working tree to the given revision. Untracked files
// are removed both before and after the checkout so build artifacts left by
// a previous failed compile cannot leak into the new build.
func (c *client) Checkout(ctx context.Context, revision string) error {
	if err := c.runner.Run(ctx, c.options(), "git", "clean", "-fdx"); err != nil {
		return err
	}
	if err := c.runner.Run(ctx, c.options(), "git", "reset", "--hard", "HEAD"); err != nil {
		return err
	}
	if err := c.runner.Run(ctx, c.options(), "git", "checkout", revision); err != nil {
		return err
	}
	if err := c.runner.Run(ctx, c.options(), "git", "clean", "-fdx"); err != nil {
		return err
	}
	return c.runner.Run(ctx, c.options(), "git", "submodule", "update", "--init")
}
