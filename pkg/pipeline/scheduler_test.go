package pipeline

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/shikhar413/openmc-performance/config"
)

func schedulerConfig(branches []string, revisions []config.RevisionItem) *config.Config {
	return &config.Config{
		Scm: config.ScmConfig{Update: true},
		CompileAll: config.CompileAllConfig{
			Branches:  branches,
			Revisions: revisions,
		},
	}
}

func TestSchedulerRun(t *testing.T) {

	t.Run("RunsExplicitRevisionsBeforeBranches", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cfg := schedulerConfig([]string{"develop"}, []config.RevisionItem{{Revision: "4b271c7", Branch: "main"}})

		harness := NewMockHarnessRunner(ctrl)
		gomock.InOrder(
			harness.EXPECT().CompileRevision(gomock.Any(), "bench.yaml", "4b271c7", "main", true).Return(0, nil),
			harness.EXPECT().CompileRevision(gomock.Any(), "bench.yaml", "develop", "develop", true).Return(0, nil),
		)

		scheduler := NewScheduler(zerolog.Nop(), nil, cfg, "bench.yaml", harness)

		// act
		exitCode := scheduler.Run(context.Background())

		assert.Equal(t, ExitOK, exitCode)
		assert.Len(t, scheduler.tested, 2)
	})

	t.Run("ClassifiesAlreadyDoneAsSkipped", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cfg := schedulerConfig([]string{"develop"}, nil)

		harness := NewMockHarnessRunner(ctrl)
		harness.EXPECT().CompileRevision(gomock.Any(), "bench.yaml", "develop", "develop", true).Return(ExitAlreadyExist, nil)

		scheduler := NewScheduler(zerolog.Nop(), nil, cfg, "bench.yaml", harness)

		// act
		exitCode := scheduler.Run(context.Background())

		assert.Equal(t, ExitOK, exitCode)
		assert.Equal(t, []string{"develop-develop"}, scheduler.skipped)
		assert.Empty(t, scheduler.tested)
		assert.Empty(t, scheduler.timings)
	})

	t.Run("CountsBenchFailureAsTestedWithTiming", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cfg := schedulerConfig([]string{"develop"}, nil)

		harness := NewMockHarnessRunner(ctrl)
		harness.EXPECT().CompileRevision(gomock.Any(), "bench.yaml", "develop", "develop", true).Return(ExitBenchError, nil)

		scheduler := NewScheduler(zerolog.Nop(), nil, cfg, "bench.yaml", harness)

		// act
		exitCode := scheduler.Run(context.Background())

		assert.Equal(t, ExitOK, exitCode)
		assert.Len(t, scheduler.tested, 1)
		assert.False(t, scheduler.tested[0].success)
		assert.Len(t, scheduler.timings, 1)
	})

	t.Run("DisablesUpdateAfterFirstFailure", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cfg := schedulerConfig([]string{"develop", "main"}, nil)

		harness := NewMockHarnessRunner(ctrl)
		gomock.InOrder(
			harness.EXPECT().CompileRevision(gomock.Any(), "bench.yaml", "develop", "develop", true).Return(ExitCompileError, nil),
			// the repository was already refreshed once; later items must
			// not fetch again
			harness.EXPECT().CompileRevision(gomock.Any(), "bench.yaml", "main", "main", false).Return(0, nil),
		)

		scheduler := NewScheduler(zerolog.Nop(), nil, cfg, "bench.yaml", harness)

		// act
		exitCode := scheduler.Run(context.Background())

		assert.Equal(t, 1, exitCode)
		assert.Equal(t, []string{"develop-develop"}, scheduler.failed)
		assert.Len(t, scheduler.tested, 1)
	})

	t.Run("ReturnsNonZeroWhenAnyItemFailed", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cfg := schedulerConfig([]string{"develop"}, nil)

		harness := NewMockHarnessRunner(ctrl)
		harness.EXPECT().CompileRevision(gomock.Any(), "bench.yaml", "develop", "develop", true).Return(ExitCompileError, nil)

		scheduler := NewScheduler(zerolog.Nop(), nil, cfg, "bench.yaml", harness)

		// act
		exitCode := scheduler.Run(context.Background())

		assert.Equal(t, 1, exitCode)
	})
}

func TestTimingStats(t *testing.T) {

	t.Run("ComputesMinMeanAndMax", func(t *testing.T) {

		// act
		min, mean, _, max := timingStats([]float64{10, 20, 30})

		assert.Equal(t, 10.0, min)
		assert.Equal(t, 20.0, mean)
		assert.Equal(t, 30.0, max)
	})

	t.Run("ComputesSampleStandardDeviation", func(t *testing.T) {

		// act
		_, _, stdDev, _ := timingStats([]float64{10, 20, 30})

		assert.InDelta(t, 10.0, stdDev, 0.0001)
	})

	t.Run("SkipsStandardDeviationForSingleTiming", func(t *testing.T) {

		// act
		_, mean, stdDev, _ := timingStats([]float64{42})

		assert.Equal(t, 42.0, mean)
		assert.Equal(t, 0.0, stdDev)
	})
}

func TestFormatDuration(t *testing.T) {

	t.Run("RendersMinutesAndSecondsAboveThreshold", func(t *testing.T) {

		// act
		text := formatDuration(150)

		assert.Equal(t, "2 min 30 sec", text)
	})

	t.Run("RoundsUpShortDurations", func(t *testing.T) {

		// act
		text := formatDuration(9.2)

		assert.Equal(t, "10 sec", text)
	})

	t.Run("KeepsWholeSeconds", func(t *testing.T) {

		// act
		text := formatDuration(10)

		assert.Equal(t, "10 sec", text)
	})
}
