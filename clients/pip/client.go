package pip

import (
	"context"
	"fmt"

	"github.com/shikhar413/openmc-performance/pkg/command"
)

// Client is the interface towards the pip installer inside a virtual
// environment; python is the venv's interpreter, env the restricted
// environment the venv is operated under
//go:generate mockgen -package=pip -destination ./mock.go -source=client.go
type Client interface {
	EnsurePip(ctx context.Context, python string, env []string, upgrade bool) error
	UpgradePip(ctx context.Context, python string, env []string) error
	InstallRequirements(ctx context.Context, python string, env []string, specs ...string) error
	IsInstalled(ctx context.Context, python string, env []string, name string) (bool, error)
	Freeze(ctx context.Context, python string, env []string) error
}

// NewClient returns a pip client spawning through the given runner.
func NewClient(runner command.Runner) Client {
	return &client{
		runner: runner,
	}
}

type client struct {
	runner command.Runner
}

func (c *client) EnsurePip(ctx context.Context, python string, env []string, upgrade bool) error {
	installed, err := c.IsInstalled(ctx, python, env, "pip")
	if err != nil {
		return err
	}

	if !installed {
		if err := c.runner.Run(ctx, command.RunOptions{Env: env}, python, "-m", "ensurepip", "--upgrade"); err != nil {
			return err
		}
	} else if !upgrade {
		return c.verifyPip(ctx, python, env)
	}

	if upgrade {
		if err := c.UpgradePip(ctx, python, env); err != nil {
			return err
		}
	}

	return c.verifyPip(ctx, python, env)
}

func (c *client) verifyPip(ctx context.Context, python string, env []string) error {
	installed, err := c.IsInstalled(ctx, python, env, "pip")
	if err != nil {
		return err
	}
	if !installed {
		return fmt.Errorf("pip doesn't work in %v", python)
	}
	return nil
}

func (c *client) UpgradePip(ctx context.Context, python string, env []string) error {
	return c.runner.Run(ctx, command.RunOptions{Env: env}, python, "-m", "pip", "install", "--upgrade", "pip", "setuptools", "wheel")
}

func (c *client) InstallRequirements(ctx context.Context, python string, env []string, specs ...string) error {
	if len(specs) == 0 {
		return nil
	}
	args := append([]string{"-m", "pip", "install"}, specs...)
	return c.runner.Run(ctx, command.RunOptions{Env: env}, python, args...)
}

func (c *client) IsInstalled(ctx context.Context, python string, env []string, name string) (bool, error) {
	result, err := c.runner.RunNoCheck(ctx, command.RunOptions{Env: env}, python, "-m", "pip", "show", "--quiet", name)
	if err != nil {
		return false, err
	}
	return result.ExitCode == 0, nil
}

// Freeze dumps the installed package list with versions into the run log.
func (c *client) Freeze(ctx context.Context, python string, env []string) error {
	return c.runner.Run(ctx, command.RunOptions{Env: env}, python, "-m", "pip", "freeze")
}
