package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shikhar413/openmc-performance/pkg/command"
	"github.com/shikhar413/openmc-performance/pkg/environment"
	"github.com/shikhar413/openmc-performance/pkg/identity"
)

// RuntimeError is a failure reported by the benchmark itself, as opposed to
// a timeout or a harness-level failure.
type RuntimeError struct {
	Benchmark string
	ExitCode  int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("benchmark %v failed with exit code %v", e.Benchmark, e.ExitCode)
}

// Invoker runs a single benchmark inside an environment and returns its
// result built from the raw trial timings
//go:generate mockgen -package=benchmark -destination ./mock.go -source=invoker.go
type Invoker interface {
	Invoke(ctx context.Context, spec Spec, executable string, runID identity.RunID, env environment.Environment, options RunOptions) (Result, error)
}

// NewInvoker returns the Invoker that executes a benchmark's run script
// with the environment's interpreter.
func NewInvoker(runner command.Runner) Invoker {
	return &scriptInvoker{
		runner: runner,
	}
}

type scriptInvoker struct {
	runner command.Runner
}

func (i *scriptInvoker) Invoke(ctx context.Context, spec Spec, executable string, runID identity.RunID, env environment.Environment, options RunOptions) (result Result, err error) {
	outputDir, err := ioutil.TempDir("", "openmc-performance-")
	if err != nil {
		return
	}
	defer os.RemoveAll(outputDir)
	outputFile := filepath.Join(outputDir, "trials.json")

	args := []string{
		"-u", spec.Script,
		"--executable", executable,
		"--run-id", runID.String(),
		"--output", outputFile,
	}
	if options.Trials > 0 {
		args = append(args, "--n-trials", strconv.Itoa(options.Trials))
	}
	if options.Affinity != "" {
		args = append(args, "--affinity", options.Affinity)
	}
	if options.Verbose {
		args = append(args, "--verbose")
	}

	runOptions := command.RunOptions{
		Dir:     spec.Dir,
		Env:     env.Environ(),
		Timeout: options.Timeout,
	}

	runResult, err := i.runner.RunNoCheck(ctx, runOptions, env.Python(), args...)
	if err != nil {
		return
	}
	if runResult.TimedOut {
		return result, &command.ExitError{Cmd: spec.Script, ExitCode: runResult.ExitCode, TimedOut: true}
	}
	if runResult.ExitCode != 0 {
		return result, &RuntimeError{Benchmark: spec.Name, ExitCode: runResult.ExitCode}
	}

	trials, err := readTrials(outputFile)
	if err != nil {
		return
	}
	if len(trials) == 0 {
		return result, &RuntimeError{Benchmark: spec.Name, ExitCode: 0}
	}

	return NewResult(spec.Name, trials), nil
}

func readTrials(filename string) ([]float64, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var trials []float64
	if err := json.Unmarshal(data, &trials); err != nil {
		return nil, fmt.Errorf("unparsable trial timings in %v: %w", filename, err)
	}
	return trials, nil
}
