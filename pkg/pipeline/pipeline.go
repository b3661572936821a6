package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/shikhar413/openmc-performance/clients/codespeed"
	"github.com/shikhar413/openmc-performance/clients/git"
	"github.com/shikhar413/openmc-performance/config"
	"github.com/shikhar413/openmc-performance/pkg/benchmark"
	"github.com/shikhar413/openmc-performance/pkg/environment"
	"github.com/shikhar413/openmc-performance/pkg/identity"
)

// Pipeline drives one revision through compile, environment setup, benchmark
// run and upload. Each stage only starts after the previous one succeeded,
// and a finished artifact makes any re-run a no-op.
type Pipeline struct {
	logger         zerolog.Logger
	logFile        *LogFile
	cfg            *config.Config
	record         RevisionRecord
	gitClient      git.Client
	builder        Builder
	harness        HarnessRunner
	uploader       codespeed.Client
	inheritEnviron []string

	filename       string
	uploadFilename string
	venvPath       string
	upload         bool
	uploaded       bool
}

// New returns a pipeline for a resolved revision. The uploader may be nil
// when uploading is disabled in the configuration.
func New(logger zerolog.Logger, logFile *LogFile, cfg *config.Config, record RevisionRecord, gitClient git.Client, builder Builder, harness HarnessRunner, uploader codespeed.Client, inheritEnviron []string) *Pipeline {

	filename := record.ArtifactPath(cfg)

	return &Pipeline{
		logger:         logger,
		logFile:        logFile,
		cfg:            cfg,
		record:         record,
		gitClient:      gitClient,
		builder:        builder,
		harness:        harness,
		uploader:       uploader,
		inheritEnviron: inheritEnviron,
		filename:       filename,
		uploadFilename: record.UploadedPath(cfg),
		upload:         cfg.RunBenchmark.Upload,
	}
}

// NewUploadOnly returns a pipeline that only re-publishes an existing result
// file, skipping every other stage.
func NewUploadOnly(logger zerolog.Logger, cfg *config.Config, filename string, uploader codespeed.Client) *Pipeline {
	return &Pipeline{
		logger:         logger,
		cfg:            cfg,
		uploader:       uploader,
		filename:       filename,
		uploadFilename: filepath.Join(cfg.UploadedJSONDir(), filepath.Base(filename)),
		upload:         true,
	}
}

// Run executes all stages and returns the process exit code.
func (p *Pipeline) Run(ctx context.Context) int {
	compileStart := time.Now()

	if code := p.prepare(); code != ExitOK {
		return code
	}

	if code := p.compileBench(ctx); code != ExitOK {
		return code
	}
	p.logger.Info().Msgf("Compilation completed in %v", time.Since(compileStart).Round(time.Second))

	benchStart := time.Now()
	failed := p.runBenchmarks(ctx)
	p.logger.Info().Msgf("Benchmarks completed in %v", time.Since(benchStart).Round(time.Second))

	// a failed run may still have written partial results; publish whatever
	// landed in the output file so the artifact-exists guard cannot strand it
	if p.upload && fileExists(p.filename) {
		if fatal := p.uploadResults(ctx); fatal {
			return 1
		}
	}

	switch {
	case p.uploaded:
		p.logger.Info().Msgf("Benchmark results uploaded and written into %v", p.uploadFilename)
	case failed:
		p.logger.Info().Msgf("Benchmark failed but results written into %v", p.filename)
	default:
		p.logger.Info().Msgf("Benchmark result written into %v", p.filename)
	}

	if p.cfg.RunBenchmark.CleanVenv && p.venvPath != "" {
		if !p.cleanVenv(ctx) {
			failed = true
		}
	}

	if failed {
		return ExitBenchError
	}

	return ExitOK
}

// Upload re-publishes the existing result file of an upload-only pipeline.
func (p *Pipeline) Upload(ctx context.Context) int {
	if fatal := p.uploadResults(ctx); fatal {
		return 1
	}

	if p.uploaded {
		p.logger.Info().Msgf("Benchmark results uploaded and written into %v", p.uploadFilename)
	}

	return ExitOK
}

// prepare checks for an already finished artifact. Finding one means the
// whole run is a no-op, the log file is discarded and the pipeline exits
// without touching the checkout.
func (p *Pipeline) prepare() int {
	p.logger.Info().Msgf("Compile and benchmark OpenMC revision %v (branch %v)", p.record.Revision, p.record.Branch)

	existing := ""
	if fileExists(p.filename) {
		existing = p.filename
	} else if p.upload && fileExists(p.uploadFilename) {
		existing = p.uploadFilename
	}

	if existing != "" {
		p.logger.Info().Msgf("JSON file %v already exists: do nothing", existing)

		if p.logFile != nil {
			p.logger.Info().Msgf("Remove log file %v", p.logFile.Filename)
			if err := p.logFile.Remove(); err != nil {
				p.logger.Warn().Err(err).Msg("Failed removing log file")
			}
		}

		return ExitAlreadyExist
	}

	if p.logFile != nil {
		p.logger.Info().Msgf("Write logs into %v", p.logFile.Filename)
	}

	if p.record.Patch != "" && p.upload {
		p.logger.Info().Msg("Disable upload on patched build")
		p.upload = false
	}

	return ExitOK
}

func (p *Pipeline) compileBench(ctx context.Context) int {
	versionInfo, err := p.compileInstall(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("Compilation failed")
		return ExitCompileError
	}

	if err := p.createVenv(ctx, versionInfo); err != nil {
		p.logger.Error().Err(err).Msg("Virtual environment setup failed")
		return ExitVenvError
	}

	return ExitOK
}

func (p *Pipeline) compileInstall(ctx context.Context) (identity.VersionInfo, error) {
	if p.cfg.Compile.Compile {
		if err := p.gitClient.Checkout(ctx, p.record.Revision); err != nil {
			return identity.VersionInfo{}, err
		}

		// drop every leftover of a previous build before patching
		if err := os.RemoveAll(p.cfg.BuildDir()); err != nil {
			return identity.VersionInfo{}, err
		}

		if err := p.builder.ApplyPatch(ctx, p.record.Patch); err != nil {
			return identity.VersionInfo{}, err
		}
	}

	return p.builder.CompileInstall(ctx)
}

// createVenv recreates the identity-keyed virtual environment in a child
// process. The name is derived from the freshly built executable and the
// harness requirements, so compatible runs share an environment.
func (p *Pipeline) createVenv(ctx context.Context, versionInfo identity.VersionInfo) error {
	requirementsFile := benchmark.GlobalRequirementsFile(p.cfg.RunBenchmark.Manifest)
	globalLines, err := readSpecLinesIfPresent(requirementsFile)
	if err != nil {
		return err
	}

	runID := identity.RunID{
		Executable: identity.ExecutableID(versionInfo.CommitHash),
		Compat:     identity.CompatibilityID(globalLines, nil),
	}
	p.venvPath = environment.VenvRoot(p.cfg.VenvDir(), runID.Name())

	exitCode, err := p.harness.RecreateVenv(ctx, p.venvPath, p.builder.Executable(), p.inheritEnviron)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return fmt.Errorf("virtual environment setup exited with code %v", exitCode)
	}

	return nil
}

func (p *Pipeline) runBenchmarks(ctx context.Context) (failed bool) {
	if err := os.MkdirAll(filepath.Dir(p.filename), 0755); err != nil {
		p.logger.Error().Err(err).Msg("Failed creating result directory")
		return true
	}
	if err := os.Remove(p.filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		p.logger.Error().Err(err).Msg("Failed removing stale result file")
		return true
	}

	exitCode, err := p.harness.RunBenchmarks(ctx, RunArgs{
		Executable:     p.builder.Executable(),
		Output:         p.filename,
		Venv:           p.venvPath,
		Branch:         p.record.Branch,
		Manifest:       p.cfg.RunBenchmark.Manifest,
		Benchmarks:     p.cfg.RunBenchmark.Benchmarks,
		Project:        p.cfg.RunBenchmark.Project,
		Affinity:       p.cfg.RunBenchmark.Affinity,
		Verbose:        p.cfg.RunBenchmark.Verbose,
		Trials:         p.cfg.RunBenchmark.Trials,
		Timeout:        p.cfg.BenchTimeout().Seconds(),
		InheritEnviron: p.inheritEnviron,
	})
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed spawning benchmark run")
		return true
	}

	return exitCode != 0
}

// uploadResults publishes the result file and moves it to the uploaded
// directory only after the server acknowledged it. Transport errors leave
// the artifact in place so the next run retries; a fatal return means an
// invariant was violated.
func (p *Pipeline) uploadResults(ctx context.Context) (fatal bool) {
	if p.uploaded {
		p.logger.Error().Msg("Results were already uploaded")
		return true
	}

	if p.filename == p.uploadFilename {
		p.logger.Error().Msgf("%v was already uploaded", p.filename)
		return true
	}

	if fileExists(p.uploadFilename) {
		p.logger.Error().Msgf("Cannot upload, %v already exists", p.uploadFilename)
		return true
	}

	suite, err := benchmark.ReadSuite(p.filename)
	if err != nil {
		p.logger.Error().Err(err).Msgf("Failed reading result file %v", p.filename)
		return true
	}

	if err := os.MkdirAll(p.cfg.UploadedJSONDir(), 0755); err != nil {
		p.logger.Error().Err(err).Msg("Failed creating uploaded directory")
		return true
	}

	body, err := p.uploader.UploadResults(ctx, suite.Records())
	if err != nil {
		p.logger.Error().Err(err).Msg("Upload failed, keeping results for a later retry")
		return false
	}

	p.logger.Info().Msgf("Response: %q", body)

	p.logger.Info().Msgf("Move %v to %v", p.filename, p.uploadFilename)
	if err := os.Rename(p.filename, p.uploadFilename); err != nil {
		p.logger.Error().Err(err).Msg("Failed moving uploaded result file")
		return true
	}

	p.uploaded = true

	return false
}

func (p *Pipeline) cleanVenv(ctx context.Context) bool {
	exitCode, err := p.harness.RemoveVenv(ctx, p.venvPath, p.builder.Executable())
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed removing virtual environment")
		return false
	}

	return exitCode == 0
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readSpecLinesIfPresent(filename string) ([]string, error) {
	if filename == "" || !fileExists(filename) {
		return nil, nil
	}
	return environment.ReadSpecLines(filename)
}
