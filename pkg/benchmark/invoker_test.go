package benchmark

import (
	"context"
	"io/ioutil"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/shikhar413/openmc-performance/pkg/command"
	"github.com/shikhar413/openmc-performance/pkg/environment"
	"github.com/shikhar413/openmc-performance/pkg/identity"
)

func invokerSpec() Spec {
	return Spec{
		Name:   "depletion",
		Dir:    "/bench/bm_depletion",
		Script: "/bench/bm_depletion/run_benchmark.py",
	}
}

// writeTrialsFromArgs finds the --output argument of the spawned command and
// writes the given trial timings there, like the run script would.
func writeTrialsFromArgs(t *testing.T, args []string, trials string) {
	for index, arg := range args {
		if arg == "--output" {
			assert.Nil(t, ioutil.WriteFile(args[index+1], []byte(trials), 0644))
			return
		}
	}
	t.Fatal("no --output argument passed to the run script")
}

func TestInvoke(t *testing.T) {

	runID := identity.RunID{Executable: "4b271c7ba3c3", Compat: "8fd1a893c65b", Timestamp: 1693483200}

	t.Run("BuildsResultFromTrialTimings", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := environment.NewMockEnvironment(ctrl)
		env.EXPECT().Python().Return("/venvs/test/bin/python").AnyTimes()
		env.EXPECT().Environ().Return([]string{"HOME=/home/bench"}).AnyTimes()

		runner := command.NewMockRunner(ctrl)
		runner.EXPECT().RunNoCheck(gomock.Any(), gomock.Any(), "/venvs/test/bin/python", gomock.Any()).
			DoAndReturn(func(ctx context.Context, options command.RunOptions, name string, args ...string) (command.Result, error) {
				assert.Equal(t, "/bench/bm_depletion", options.Dir)
				writeTrialsFromArgs(t, args, "[10.0, 20.0, 30.0]")
				return command.Result{ExitCode: 0}, nil
			})

		invoker := NewInvoker(runner)

		// act
		result, err := invoker.Invoke(context.Background(), invokerSpec(), "/repo/build/openmc", runID, env, RunOptions{})

		assert.Nil(t, err)
		assert.Equal(t, "depletion", result.Name())
		assert.Equal(t, 20.0, result.Mean())
	})

	t.Run("ReturnsRuntimeErrorForNonZeroExit", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := environment.NewMockEnvironment(ctrl)
		env.EXPECT().Python().Return("/venvs/test/bin/python").AnyTimes()
		env.EXPECT().Environ().Return(nil).AnyTimes()

		runner := command.NewMockRunner(ctrl)
		runner.EXPECT().RunNoCheck(gomock.Any(), gomock.Any(), "/venvs/test/bin/python", gomock.Any()).
			Return(command.Result{ExitCode: 3}, nil)

		invoker := NewInvoker(runner)

		// act
		_, err := invoker.Invoke(context.Background(), invokerSpec(), "/repo/build/openmc", runID, env, RunOptions{})

		var runtimeErr *RuntimeError
		assert.ErrorAs(t, err, &runtimeErr)
		assert.Equal(t, 3, runtimeErr.ExitCode)
	})

	t.Run("ReturnsTimeoutErrorWhenScriptTimedOut", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := environment.NewMockEnvironment(ctrl)
		env.EXPECT().Python().Return("/venvs/test/bin/python").AnyTimes()
		env.EXPECT().Environ().Return(nil).AnyTimes()

		runner := command.NewMockRunner(ctrl)
		runner.EXPECT().RunNoCheck(gomock.Any(), gomock.Any(), "/venvs/test/bin/python", gomock.Any()).
			Return(command.Result{ExitCode: -1, TimedOut: true}, nil)

		invoker := NewInvoker(runner)

		// act
		_, err := invoker.Invoke(context.Background(), invokerSpec(), "/repo/build/openmc", runID, env, RunOptions{})

		assert.True(t, command.IsTimeout(err))
	})

	t.Run("RejectsEmptyTrialList", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := environment.NewMockEnvironment(ctrl)
		env.EXPECT().Python().Return("/venvs/test/bin/python").AnyTimes()
		env.EXPECT().Environ().Return(nil).AnyTimes()

		runner := command.NewMockRunner(ctrl)
		runner.EXPECT().RunNoCheck(gomock.Any(), gomock.Any(), "/venvs/test/bin/python", gomock.Any()).
			DoAndReturn(func(ctx context.Context, options command.RunOptions, name string, args ...string) (command.Result, error) {
				writeTrialsFromArgs(t, args, "[]")
				return command.Result{ExitCode: 0}, nil
			})

		invoker := NewInvoker(runner)

		// act
		_, err := invoker.Invoke(context.Background(), invokerSpec(), "/repo/build/openmc", runID, env, RunOptions{})

		var runtimeErr *RuntimeError
		assert.ErrorAs(t, err, &runtimeErr)
	})
}
