package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"

	"github.com/shikhar413/openmc-performance/config"
)

// Scheduler benchmarks a queue of revisions and branches, one child pipeline
// per item, and reports what was skipped, tested and failed at the end.
type Scheduler struct {
	logger     zerolog.Logger
	logFile    *LogFile
	cfg        *config.Config
	configFile string
	harness    HarnessRunner

	update  bool
	skipped []string
	tested  []testedRevision
	failed  []string
	timings []float64
}

type testedRevision struct {
	key     string
	success bool
}

// NewScheduler returns a scheduler processing the compile_all queue of the
// given configuration file.
func NewScheduler(logger zerolog.Logger, logFile *LogFile, cfg *config.Config, configFile string, harness HarnessRunner) *Scheduler {
	return &Scheduler{
		logger:     logger,
		logFile:    logFile,
		cfg:        cfg,
		configFile: configFile,
		harness:    harness,
		update:     cfg.Scm.Update,
	}
}

// Run works through the explicit revisions first, then the tracked branches.
// The summary is reported even when the queue is aborted halfway.
func (s *Scheduler) Run(ctx context.Context) (exitCode int) {
	s.logger.Info().Msg("Compile and benchmark all")
	if s.logFile != nil {
		s.logger.Info().Msgf("Write logs into %v", s.logFile.Filename)
	}
	s.logger.Info().Msgf("Revisions: %v", s.cfg.CompileAll.Revisions)
	s.logger.Info().Msgf("Branches: %v", s.cfg.CompileAll.Branches)

	defer s.report()

	for _, item := range s.cfg.CompileAll.Revisions {
		if ctx.Err() != nil {
			return 1
		}
		s.benchmark(ctx, item.Revision, item.Branch)
	}

	for _, branch := range s.cfg.CompileAll.Branches {
		if ctx.Err() != nil {
			return 1
		}
		s.benchmark(ctx, branch, branch)
	}

	if len(s.failed) > 0 {
		return 1
	}

	return ExitOK
}

// benchmark runs one child pipeline and classifies its exit code. A compile,
// environment or benchmark failure disables further repository updates: the
// checkout was already refreshed once and re-fetching on a broken revision
// only wastes time.
func (s *Scheduler) benchmark(ctx context.Context, revision, branch string) {
	key := revision
	if branch != "" {
		key = fmt.Sprintf("%v-%v", branch, revision)
	}

	start := time.Now()
	exitCode, err := s.harness.CompileRevision(ctx, s.configFile, revision, branch, s.update)
	duration := time.Since(start).Seconds()

	if err != nil {
		s.logger.Error().Err(err).Msgf("Failed spawning pipeline for %v", key)
		s.failed = append(s.failed, key)
		return
	}

	if exitCode != 0 {
		s.logger.Info().Msgf("Benchmark exit code: %v", exitCode)
	}

	if exitCode == ExitAlreadyExist {
		s.skipped = append(s.skipped, key)
		return
	}

	if exitCode >= ExitCompileError && s.update {
		s.update = false
	}

	if exitCode == ExitOK || exitCode == ExitBenchError {
		s.tested = append(s.tested, testedRevision{key: key, success: exitCode == ExitOK})
		s.timings = append(s.timings, duration)
	} else {
		s.failed = append(s.failed, key)
	}
}

func (s *Scheduler) report() {
	for _, key := range s.skipped {
		s.logger.Info().Msgf("Skipped: %v", key)
	}

	for _, tested := range s.tested {
		if tested.success {
			s.logger.Info().Msgf("Tested: %v (%v)", tested.key, aurora.Green("All benchmarks succeeded"))
		} else {
			s.logger.Info().Msgf("Tested: %v (%v)", tested.key, aurora.Yellow("Some benchmarks failed"))
		}
	}

	for _, key := range s.failed {
		s.logger.Error().Msgf("%v", aurora.Red(fmt.Sprintf("FAILED: %v", key)))
	}

	if len(s.timings) > 0 {
		s.renderTimings()
	}
}

func (s *Scheduler) renderTimings() {
	min, mean, stdDev, max := timingStats(s.timings)

	meanText := formatDuration(mean)
	if len(s.timings) >= 2 {
		meanText = fmt.Sprintf("%v -- std dev: %v", meanText, formatDuration(stdDev))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"", "Timing"})
	table.SetBorder(false)
	table.AppendBulk([][]string{
		{"min", formatDuration(min)},
		{"avg", meanText},
		{"max", formatDuration(max)},
	})
	table.Render()
}

func timingStats(timings []float64) (min, mean, stdDev, max float64) {
	min = timings[0]
	max = timings[0]
	sum := 0.0
	for _, timing := range timings {
		if timing < min {
			min = timing
		}
		if timing > max {
			max = timing
		}
		sum += timing
	}
	mean = sum / float64(len(timings))

	if len(timings) >= 2 {
		varianceSum := 0.0
		for _, timing := range timings {
			varianceSum += (timing - mean) * (timing - mean)
		}
		stdDev = math.Sqrt(varianceSum / float64(len(timings)-1))
	}

	return
}

// formatDuration renders seconds the way the report expects: minutes and
// seconds above 100 seconds, rounded up whole seconds below.
func formatDuration(seconds float64) string {
	if seconds >= 100 {
		return fmt.Sprintf("%.0f min %.0f sec", math.Floor(seconds/60), math.Mod(seconds, 60))
	}
	return fmt.Sprintf("%.0f sec", math.Ceil(seconds))
}
