package environment

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/shikhar413/openmc-performance/clients/pip"
	"github.com/shikhar413/openmc-performance/pkg/command"
)

// UpgradePolicy controls when the dependency installer inside an
// environment is upgraded during Ensure.
type UpgradePolicy string

const (
	UpgradeAlways     UpgradePolicy = "always"
	UpgradeNever      UpgradePolicy = "never"
	UpgradeOnCreate   UpgradePolicy = "oncreate"
	UpgradeOnExisting UpgradePolicy = "onexisting"
)

// State tracks an environment root through its lifecycle.
type State int

const (
	StateAbsent State = iota
	StateCreating
	StateBaseReady
	StateDepsReady
	StateFailed
)

// EnsureOptions modify how an environment is produced or refreshed.
type EnsureOptions struct {
	Upgrade UpgradePolicy
	// InheritEnviron lists environment variable names copied from the
	// calling process into the environment, on top of the always-needed
	// HOME and PATH.
	InheritEnviron []string
}

// Environment is one isolated venv bound to a build under test.
type Environment interface {
	Root() string
	Python() string
	Environ() []string
	EnsureInstaller(ctx context.Context, upgrade bool) error
	EnsureRequirements(ctx context.Context, requirements Requirements) error
}

// Manager produces working, dependency-satisfied execution environments,
// each bound 1:1 to an identity-derived root path and reusable across
// invocations that share that root
//go:generate mockgen -package=environment -destination ./mock.go -source=environment.go
type Manager interface {
	Ensure(ctx context.Context, root, executable string, options EnsureOptions) (Environment, error)
	Remove(root string) error
	Exists(root string) bool
}

// NewManager returns a Manager creating venvs with the given base python
// interpreter.
func NewManager(runner command.Runner, pipClient pip.Client, python string) Manager {
	return &manager{
		runner:    runner,
		pipClient: pipClient,
		python:    python,
	}
}

type manager struct {
	runner    command.Runner
	pipClient pip.Client
	python    string
}

type virtualEnv struct {
	root       string
	executable string
	state      State
	environ    []string
	pipClient  pip.Client
}

func (e *virtualEnv) Root() string {
	return e.root
}

func (e *virtualEnv) Python() string {
	return filepath.Join(e.root, "bin", "python")
}

// Environ returns the restricted set of environment variables commands
// inside this environment run with.
func (e *virtualEnv) Environ() []string {
	return e.environ
}

func (m *manager) Exists(root string) bool {
	_, err := os.Stat(filepath.Join(root, "pyvenv.cfg"))
	return err == nil
}

// Ensure returns a valid environment at root, creating it when absent.
// Calling Ensure twice on the same root with the same inputs does not
// re-create or corrupt an existing valid environment; it re-verifies the
// installer per the upgrade policy.
func (m *manager) Ensure(ctx context.Context, root, executable string, options EnsureOptions) (Environment, error) {
	exists := m.Exists(root)

	upgrade := false
	switch options.Upgrade {
	case UpgradeAlways:
		upgrade = true
	case UpgradeOnCreate:
		upgrade = !exists
	case UpgradeOnExisting:
		upgrade = exists
	}

	env := &virtualEnv{
		root:       root,
		executable: executable,
		state:      StateAbsent,
		environ:    restrictedEnviron(options.InheritEnviron),
		pipClient:  m.pipClient,
	}

	if exists {
		log.Debug().Msgf("Reusing existing environment %v", root)
		env.state = StateBaseReady
	} else {
		log.Info().Msgf("Creating the virtual environment %v", root)
		env.state = StateCreating
		if err := m.create(ctx, root); err != nil {
			env.state = StateFailed
			return nil, err
		}
		env.state = StateBaseReady
	}

	if err := env.EnsureInstaller(ctx, upgrade); err != nil {
		env.state = StateFailed
		if !exists {
			_ = os.RemoveAll(root)
		}
		return nil, err
	}

	env.state = StateDepsReady
	return env, nil
}

// create invokes the environment-creation primitive. On failure a root that
// did not pre-exist is removed recursively; a pre-existing root is left in
// place since the caller did not ask to create it.
func (m *manager) create(ctx context.Context, root string) error {
	alreadyExisted := false
	if _, err := os.Stat(root); err == nil {
		alreadyExisted = true
	}

	result, err := m.runner.RunNoCheck(ctx, command.RunOptions{}, m.python, "-m", "venv", root)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		if !alreadyExisted {
			_ = os.RemoveAll(root)
		}
		return &CreationFailedError{Root: root, ExitCode: result.ExitCode, AlreadyExisted: alreadyExisted}
	}

	return nil
}

func (m *manager) Remove(root string) error {
	log.Info().Msgf("Removing the virtual environment %v", root)
	return os.RemoveAll(root)
}

// EnsureInstaller verifies the dependency installer is present and
// functional, optionally upgrading it first.
func (e *virtualEnv) EnsureInstaller(ctx context.Context, upgrade bool) error {
	if err := e.pipClient.EnsurePip(ctx, e.Python(), e.environ, upgrade); err != nil {
		return &InstallerFailedError{Root: e.root, Err: err}
	}
	return nil
}

// EnsureRequirements installs a requirement collection into the
// environment. An empty collection is a no-op that still succeeds. A
// failure leaves the environment itself intact; callers decide whether to
// abort.
func (e *virtualEnv) EnsureRequirements(ctx context.Context, requirements Requirements) error {
	if requirements.Len() == 0 {
		log.Debug().Msgf("Nothing to install into %v", e.root)
		return nil
	}

	log.Info().Msgf("Installing %v requirements into the virtual environment %v", requirements.Len(), e.root)
	if err := e.pipClient.InstallRequirements(ctx, e.Python(), e.environ, requirements.Specs...); err != nil {
		return &RequirementsInstallationFailedError{Specs: requirements.Specs, Err: err}
	}

	return e.pipClient.Freeze(ctx, e.Python(), e.environ)
}

// necessaryEnvVars are always copied into an environment's restricted
// environ.
var necessaryEnvVars = []string{"HOME", "PATH"}

func restrictedEnviron(inherit []string) []string {
	names := append([]string{}, necessaryEnvVars...)
	names = append(names, inherit...)

	var environ []string
	for _, name := range names {
		if value, ok := os.LookupEnv(name); ok {
			environ = append(environ, name+"="+value)
		}
	}
	return environ
}

// VenvRoot returns the root path for the environment named by the given run
// identity under venvsDir.
func VenvRoot(venvsDir, name string) string {
	if venvsDir == "" {
		venvsDir = "venv"
	}
	abs, err := filepath.Abs(filepath.Join(venvsDir, name))
	if err != nil {
		return filepath.Join(venvsDir, name)
	}
	return abs
}

// IsRequirementsError reports whether err came from a requirements install
// attempt, as opposed to the environment being unusable.
func IsRequirementsError(err error) bool {
	var reqErr *RequirementsInstallationFailedError
	return errors.As(err, &reqErr)
}
