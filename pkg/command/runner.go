package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Runner spawns external commands, echoes them and their combined output
// into the current run log and reports exit codes. Every invocation blocks
// until the command finished, failed to start or hit its timeout.
//go:generate mockgen -package=command -destination ./mock.go -source=runner.go
type Runner interface {
	Run(ctx context.Context, options RunOptions, name string, args ...string) error
	RunNoCheck(ctx context.Context, options RunOptions, name string, args ...string) (Result, error)
	Output(ctx context.Context, options RunOptions, name string, args ...string) (string, error)
	OutputNoCheck(ctx context.Context, options RunOptions, name string, args ...string) (Result, string, error)
}

// RunOptions modify a single invocation.
type RunOptions struct {
	// Dir is the working directory for the command; empty means inherit.
	Dir string
	// StdinFile is fed to the command's stdin when set.
	StdinFile string
	// Timeout kills the command after the given wall-clock duration.
	Timeout time.Duration
	// Env replaces the command's environment entirely when non-nil.
	Env []string
}

// Result reports how an invocation ended.
type Result struct {
	ExitCode int
	TimedOut bool
}

// ExitError is returned by Run and Output when the command exited non-zero
// or was killed by its timeout.
type ExitError struct {
	Cmd      string
	ExitCode int
	TimedOut bool
}

func (e *ExitError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("command %v timed out", e.Cmd)
	}
	return fmt.Sprintf("command %v failed with exit code %v", e.Cmd, e.ExitCode)
}

// IsTimeout reports whether err is an ExitError caused by the timeout.
func IsTimeout(err error) bool {
	exitErr, ok := err.(*ExitError)
	return ok && exitErr.TimedOut
}

// NewRunner returns a Runner that writes command echo and output through
// the given logger.
func NewRunner(logger zerolog.Logger) Runner {
	return &runner{
		logger: logger,
	}
}

type runner struct {
	logger zerolog.Logger
}

func (r *runner) Run(ctx context.Context, options RunOptions, name string, args ...string) error {
	result, err := r.RunNoCheck(ctx, options, name, args...)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 || result.TimedOut {
		return &ExitError{Cmd: commandString(name, args), ExitCode: result.ExitCode, TimedOut: result.TimedOut}
	}
	return nil
}

func (r *runner) RunNoCheck(ctx context.Context, options RunOptions, name string, args ...string) (result Result, err error) {
	cmdCtx, cmd, cancel, stdin, err := r.prepare(ctx, options, name, args)
	if err != nil {
		return
	}
	defer cancel()
	if stdin != nil {
		defer stdin.Close()
	}

	writer := newLogLineWriter(r.logger)
	cmd.Stdout = writer
	cmd.Stderr = writer

	err = cmd.Run()
	writer.Flush()

	return r.finish(cmdCtx, options, name, args, err)
}

func (r *runner) Output(ctx context.Context, options RunOptions, name string, args ...string) (string, error) {
	result, stdout, err := r.OutputNoCheck(ctx, options, name, args...)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 || result.TimedOut {
		for _, line := range strings.Split(stdout, "\n") {
			r.logger.Info().Msg(line)
		}
		return "", &ExitError{Cmd: commandString(name, args), ExitCode: result.ExitCode, TimedOut: result.TimedOut}
	}
	return stdout, nil
}

func (r *runner) OutputNoCheck(ctx context.Context, options RunOptions, name string, args ...string) (result Result, stdout string, err error) {
	cmdCtx, cmd, cancel, stdin, err := r.prepare(ctx, options, name, args)
	if err != nil {
		return
	}
	defer cancel()
	if stdin != nil {
		defer stdin.Close()
	}

	var buffer bytes.Buffer
	cmd.Stdout = &buffer
	cmd.Stderr = newLogLineWriter(r.logger)

	runErr := cmd.Run()
	stdout = strings.TrimRight(buffer.String(), "\n")

	result, err = r.finish(cmdCtx, options, name, args, runErr)
	return
}

func (r *runner) prepare(ctx context.Context, options RunOptions, name string, args []string) (cmdCtx context.Context, cmd *exec.Cmd, cancel context.CancelFunc, stdin *os.File, err error) {
	cmdCtx = ctx
	cancel = func() {}
	if options.Timeout > 0 {
		cmdCtx, cancel = context.WithTimeout(ctx, options.Timeout)
	}

	r.logger.Info().Msgf("+ %v", commandString(name, args))

	cmd = exec.CommandContext(cmdCtx, name, args...)
	cmd.Dir = options.Dir
	if options.Env != nil {
		cmd.Env = options.Env
	}

	if options.StdinFile != "" {
		stdin, err = os.Open(options.StdinFile)
		if err != nil {
			cancel()
			return nil, nil, nil, nil, err
		}
		cmd.Stdin = stdin
	}

	return
}

func (r *runner) finish(ctx context.Context, options RunOptions, name string, args []string, runErr error) (result Result, err error) {
	if options.Timeout > 0 && ctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		r.logger.Warn().Msgf("Command %v timed out after %v", commandString(name, args), options.Timeout)
		return
	}

	if runErr != nil {
		exitErr, ok := runErr.(*exec.ExitError)
		if !ok {
			// the command could not be started at all
			return result, runErr
		}
		result.ExitCode = exitErr.ExitCode()
		r.logger.Warn().Msgf("Command %v failed with exit code %v", commandString(name, args), result.ExitCode)
	}

	return
}

func commandString(name string, args []string) string {
	parts := append([]string{name}, args...)
	for i, p := range parts {
		if strings.ContainsAny(p, " \t'\"") {
			parts[i] = fmt.Sprintf("%q", p)
		}
	}
	return strings.Join(parts, " ")
}
