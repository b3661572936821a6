package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/shikhar413/openmc-performance/pkg/command"
	"github.com/shikhar413/openmc-performance/pkg/environment"
	"github.com/shikhar413/openmc-performance/pkg/identity"
)

// RunOptions carry the harness options of one execution batch.
type RunOptions struct {
	// Venv overrides the identity-derived environment root when set.
	Venv string
	// RequirementsFile is the harness's own requirement set, installed
	// into the common environment before any benchmark runs.
	RequirementsFile string
	// VenvDir is the directory identity-derived environment roots live
	// under when Venv is not set.
	VenvDir string

	Verbose        bool
	Affinity       string
	Trials         int
	Timeout        time.Duration
	Branch         string
	Project        string
	InheritEnviron []string
}

// Runner executes a batch of benchmarks against one shared environment,
// tolerating missing per-benchmark dependencies without aborting the whole
// batch.
type Runner interface {
	RunBenchmarks(ctx context.Context, executable string, specs []Spec, options RunOptions) (*Suite, error)
}

// NewRunner returns the benchmark execution engine.
func NewRunner(runner command.Runner, manager environment.Manager, invoker Invoker) Runner {
	return &benchmarkRunner{
		runner:  runner,
		manager: manager,
		invoker: invoker,
	}
}

type benchmarkRunner struct {
	runner  command.Runner
	manager environment.Manager
	invoker Invoker
}

const installRequirementsReason = "Install requirements error"

func (r *benchmarkRunner) RunBenchmarks(ctx context.Context, executable string, specs []Spec, options RunOptions) (*Suite, error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunBenchmarks")
	defer span.Finish()

	toRun := make([]Spec, len(specs))
	copy(toRun, specs)
	SortSpecs(toRun)

	versionInfo, err := identity.ProbeVersion(ctx, r.runner, executable)
	if err != nil {
		return nil, err
	}

	globalLines, err := readSpecLinesIfSet(options.RequirementsFile)
	if err != nil {
		return nil, err
	}

	runID := identity.RunID{
		Executable: identity.ExecutableID(versionInfo.CommitHash),
		Compat:     identity.CompatibilityID(globalLines, nil),
		Timestamp:  time.Now().Unix(),
	}

	root := options.Venv
	if root == "" {
		root = environment.VenvRoot(options.VenvDir, runID.Name())
	}

	common, err := r.manager.Ensure(ctx, root, executable, environment.EnsureOptions{
		Upgrade:        environment.UpgradeOnCreate,
		InheritEnviron: options.InheritEnviron,
	})
	if err != nil {
		return nil, err
	}

	globalReqs, err := environment.RequirementsFromFile(options.RequirementsFile)
	if err != nil {
		return nil, err
	}
	if err := common.EnsureRequirements(ctx, globalReqs); err != nil {
		return nil, err
	}

	// Check which benchmarks the common environment can satisfy. One
	// benchmark's unsatisfiable dependency must never prevent the others
	// from running.
	available := map[string]bool{}
	for _, spec := range toRun {
		log.Info().Msgf("(checking common venv has dependencies for benchmark %v)", spec.Name)
		reqs, err := environment.RequirementsFromFile(spec.LockFile)
		if err == nil {
			err = common.EnsureRequirements(ctx, reqs)
		}
		if err != nil {
			log.Warn().Msgf("common venv is missing requirements for benchmark %v", spec.Name)
			available[spec.Name] = false
		} else {
			available[spec.Name] = true
		}
	}

	buildInfo, buildInfoErr := identity.ProbeBuildInfo(ctx, r.runner, executable)
	if buildInfoErr != nil {
		log.Warn().Err(buildInfoErr).Msg("Could not determine build info for result records")
	}
	environmentInfo, err := identity.ProbeEnvironment(ctx, r.runner)
	if err != nil {
		log.Warn().Err(err).Msg("Could not determine host environment for result records")
	}

	suite := &Suite{}
	runCount := len(toRun)

	for index, spec := range toRun {
		log.Info().Msgf("[%v/%v] %v...", index+1, runCount, spec.Name)

		if !available[spec.Name] {
			log.Error().Msgf("Benchmark %v failed: could not install requirements", spec.Name)
			suite.AddError(spec.Name, installRequirementsReason)
			continue
		}

		benchRunID := runID.WithBench(spec.Name)
		result, err := r.invoker.Invoke(ctx, spec, executable, benchRunID, common, options)
		if err != nil {
			switch {
			case command.IsTimeout(err):
				log.Error().Msgf("Benchmark %v timed out", spec.Name)
				suite.AddError(spec.Name, "timed out")
			default:
				log.Error().Err(err).Msgf("Benchmark %v failed", spec.Name)
				suite.AddError(spec.Name, err.Error())
			}
			continue
		}

		if buildInfoErr == nil {
			result.AddExecutableInfo(buildInfo.CommitHash, buildInfo.CommitDate, buildInfo.Version, environmentInfo, options.Branch, options.Project)
		}
		suite.Add(result)
	}

	return suite, nil
}

func readSpecLinesIfSet(filename string) ([]string, error) {
	if filename == "" {
		return nil, nil
	}
	lines, err := environment.ReadSpecLines(filename)
	if err != nil {
		return nil, fmt.Errorf("failed reading requirements file %v: %w", filename, err)
	}
	return lines, nil
}
