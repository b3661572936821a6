package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shikhar413/openmc-performance/pkg/command"
)

// RunArgs carries everything a child `run` invocation needs; it mirrors the
// flags of the run subcommand.
type RunArgs struct {
	Executable     string
	Output         string
	Venv           string
	Branch         string
	Manifest       string
	Benchmarks     string
	Project        string
	Affinity       string
	Verbose        bool
	Trials         int
	Timeout        float64
	InheritEnviron []string
}

// HarnessRunner spawns fresh invocations of this harness binary. The
// environment and run stages run in child processes so that a crash or leak
// in one stage can never corrupt the parent pipeline, and the scheduler uses
// it to run one full pipeline per revision.
//go:generate mockgen -package=pipeline -destination ./mock_harness.go -source=harness.go
type HarnessRunner interface {
	RecreateVenv(ctx context.Context, venv, executable string, inheritEnviron []string) (int, error)
	RemoveVenv(ctx context.Context, venv, executable string) (int, error)
	RunBenchmarks(ctx context.Context, args RunArgs) (int, error)
	CompileRevision(ctx context.Context, configFile, revision, branch string, update bool) (int, error)
}

// NewHarnessRunner returns a HarnessRunner spawning the currently running
// binary.
func NewHarnessRunner(runner command.Runner) HarnessRunner {
	program, err := os.Executable()
	if err != nil {
		program = os.Args[0]
	}

	return &harnessRunner{
		runner:  runner,
		program: program,
	}
}

type harnessRunner struct {
	runner  command.Runner
	program string
}

func (h *harnessRunner) spawn(ctx context.Context, args []string) (int, error) {
	result, err := h.runner.RunNoCheck(ctx, command.RunOptions{}, h.program, args...)
	if err != nil {
		return -1, err
	}

	return result.ExitCode, nil
}

func (h *harnessRunner) RecreateVenv(ctx context.Context, venv, executable string, inheritEnviron []string) (int, error) {
	args := []string{"venv", "recreate", "--venv", venv, "--executable", executable}
	if len(inheritEnviron) > 0 {
		args = append(args, fmt.Sprintf("--inherit-environ=%v", strings.Join(inheritEnviron, ",")))
	}

	return h.spawn(ctx, args)
}

func (h *harnessRunner) RemoveVenv(ctx context.Context, venv, executable string) (int, error) {
	return h.spawn(ctx, []string{"venv", "remove", "--venv", venv, "--executable", executable})
}

func (h *harnessRunner) RunBenchmarks(ctx context.Context, args RunArgs) (int, error) {
	cmdArgs := []string{"run",
		"--executable", args.Executable,
		"--output", args.Output,
		"--branch", args.Branch,
	}
	if args.Venv != "" {
		cmdArgs = append(cmdArgs, "--venv", args.Venv)
	}
	if args.Manifest != "" {
		cmdArgs = append(cmdArgs, "--manifest", args.Manifest)
	}
	if args.Benchmarks != "" {
		cmdArgs = append(cmdArgs, fmt.Sprintf("--benchmarks=%v", args.Benchmarks))
	}
	if args.Project != "" {
		cmdArgs = append(cmdArgs, "--project", args.Project)
	}
	if args.Affinity != "" {
		cmdArgs = append(cmdArgs, "--affinity", args.Affinity)
	}
	if args.Verbose {
		cmdArgs = append(cmdArgs, "--verbose")
	}
	if args.Trials > 0 {
		cmdArgs = append(cmdArgs, "--n-trials", fmt.Sprint(args.Trials))
	}
	if args.Timeout > 0 {
		cmdArgs = append(cmdArgs, "--timeout", fmt.Sprint(args.Timeout))
	}
	if len(args.InheritEnviron) > 0 {
		cmdArgs = append(cmdArgs, fmt.Sprintf("--inherit-environ=%v", strings.Join(args.InheritEnviron, ",")))
	}

	return h.spawn(ctx, cmdArgs)
}

func (h *harnessRunner) CompileRevision(ctx context.Context, configFile, revision, branch string, update bool) (int, error) {
	args := []string{"compile", configFile, revision}
	if branch != "" {
		args = append(args, branch)
	}
	if !update {
		args = append(args, "--no-update")
	}

	return h.spawn(ctx, args)
}
