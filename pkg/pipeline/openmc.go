package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/shikhar413/openmc-performance/config"
	"github.com/shikhar413/openmc-performance/pkg/command"
	"github.com/shikhar413/openmc-performance/pkg/identity"
)

// Builder compiles the checked out sources and knows where the resulting
// executable lives.
//go:generate mockgen -package=pipeline -destination ./mock.go -source=openmc.go
type Builder interface {
	ApplyPatch(ctx context.Context, patchFile string) error
	CompileInstall(ctx context.Context) (identity.VersionInfo, error)
	Executable() string
}

// NewBuilder returns a Builder driving cmake and make against the build
// directory derived from the configuration.
func NewBuilder(logger zerolog.Logger, runner command.Runner, cfg *config.Config) Builder {
	return &builder{
		logger:  logger,
		runner:  runner,
		cfg:     cfg,
		program: resolveExecutable(cfg),
	}
}

type builder struct {
	logger  zerolog.Logger
	runner  command.Runner
	cfg     *config.Config
	program string
}

// resolveExecutable returns the path the built executable ends up at: under
// the install prefix when installing, otherwise inside the build tree.
func resolveExecutable(cfg *config.Config) string {
	if cfg.Compile.Install {
		return filepath.Join(cfg.Prefix(), "bin", "openmc")
	}
	return filepath.Join(cfg.BuildDir(), "openmc")
}

func (b *builder) Executable() string {
	return b.program
}

// ApplyPatch applies a patch file on top of the checked out revision. Patched
// builds keep their results out of the publishable artifact directory.
func (b *builder) ApplyPatch(ctx context.Context, patchFile string) error {
	if patchFile == "" {
		return nil
	}

	b.logger.Info().Msgf("Apply patch %v in %v", patchFile, b.cfg.Scm.RepoDir)

	return b.runner.Run(ctx, command.RunOptions{Dir: b.cfg.Scm.RepoDir, StdinFile: patchFile}, "patch", "-p1")
}

func (b *builder) CompileInstall(ctx context.Context) (identity.VersionInfo, error) {
	if err := b.compile(ctx); err != nil {
		return identity.VersionInfo{}, err
	}
	if err := b.install(ctx); err != nil {
		return identity.VersionInfo{}, err
	}

	return b.version(ctx)
}

func (b *builder) compile(ctx context.Context) error {
	if !b.cfg.Compile.Compile {
		return nil
	}

	buildDir := b.cfg.BuildDir()

	if err := os.RemoveAll(buildDir); err != nil {
		return err
	}
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return err
	}

	// the CMakeLists.txt file sits one level above the build directory
	if err := b.runner.Run(ctx, command.RunOptions{Dir: buildDir}, "cmake", "-B", buildDir, filepath.Join(buildDir, "..")); err != nil {
		return err
	}

	makeArgs := []string{"-C", buildDir}
	if b.cfg.Compile.Jobs > 0 {
		makeArgs = append(makeArgs, fmt.Sprintf("-j%d", b.cfg.Compile.Jobs))
	}

	return b.runner.Run(ctx, command.RunOptions{Dir: buildDir}, "make", makeArgs...)
}

func (b *builder) install(ctx context.Context) error {
	if !b.cfg.Compile.Install {
		// run the executable straight from the build tree
		return nil
	}

	prefix := b.cfg.Prefix()

	if err := os.RemoveAll(prefix); err != nil {
		return err
	}
	if err := os.MkdirAll(prefix, 0755); err != nil {
		return err
	}

	return b.runner.Run(ctx, command.RunOptions{Dir: b.cfg.BuildDir()}, "make", "install")
}

func (b *builder) version(ctx context.Context) (identity.VersionInfo, error) {
	b.logger.Info().Msg("Installed OpenMC version:")
	if err := b.runner.Run(ctx, command.RunOptions{}, b.program, "--version"); err != nil {
		return identity.VersionInfo{}, err
	}

	info, err := identity.ProbeVersion(ctx, b.runner, b.program)
	if err != nil {
		return identity.VersionInfo{}, err
	}

	b.logger.Info().Msgf("OpenMC version: %v, commit hash: %v", info.Version, info.CommitHash)

	return info, nil
}
