package git

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/shikhar413/openmc-performance/pkg/command"
)

func TestParseRevision(t *testing.T) {

	t.Run("PrefersRemoteBranchName", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runner := command.NewMockRunner(ctrl)

		runner.EXPECT().OutputNoCheck(gomock.Any(), gomock.Any(), "git", "rev-parse", "--verify", "remotes/origin/develop").
			Return(command.Result{ExitCode: 0}, "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6\n", nil)

		client := NewClient(runner, "/data/openmc", "remotes/origin")

		// act
		revision, err := client.ParseRevision(context.Background(), "develop")

		assert.Nil(t, err)
		assert.True(t, revision.IsBranch)
		assert.Equal(t, "remotes/origin/develop", revision.RevName)
		assert.Equal(t, "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6", revision.SHA)
	})

	t.Run("FallsBackToPlainRevision", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runner := command.NewMockRunner(ctrl)

		runner.EXPECT().OutputNoCheck(gomock.Any(), gomock.Any(), "git", "rev-parse", "--verify", "remotes/origin/4b271c7").
			Return(command.Result{ExitCode: 128}, "", nil)
		runner.EXPECT().OutputNoCheck(gomock.Any(), gomock.Any(), "git", "rev-parse", "--verify", "4b271c7").
			Return(command.Result{ExitCode: 0}, "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6\n", nil)

		client := NewClient(runner, "/data/openmc", "remotes/origin")

		// act
		revision, err := client.ParseRevision(context.Background(), "4b271c7")

		assert.Nil(t, err)
		assert.False(t, revision.IsBranch)
		assert.Equal(t, "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6", revision.RevName)
	})

	t.Run("RejectsResolutionToUnrelatedObject", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runner := command.NewMockRunner(ctrl)

		runner.EXPECT().OutputNoCheck(gomock.Any(), gomock.Any(), "git", "rev-parse", "--verify", "remotes/origin/v0.13.2").
			Return(command.Result{ExitCode: 128}, "", nil)
		runner.EXPECT().OutputNoCheck(gomock.Any(), gomock.Any(), "git", "rev-parse", "--verify", "v0.13.2").
			Return(command.Result{ExitCode: 0}, "8fd1a893c65b271c7ba3c3c7d95d2f7f2f76de8d\n", nil)

		client := NewClient(runner, "/data/openmc", "remotes/origin")

		// act
		_, err := client.ParseRevision(context.Background(), "v0.13.2")

		assert.NotNil(t, err)
	})
}

func TestRevisionInfo(t *testing.T) {

	t.Run("ParsesHashAndDate", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runner := command.NewMockRunner(ctrl)

		runner.EXPECT().Output(gomock.Any(), gomock.Any(), "git", "show", "-s", "--pretty=format:%H|%ci", "remotes/origin/develop^!").
			Return("4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6|2023-08-31 10:15:00 +0200", nil)

		client := NewClient(runner, "/data/openmc", "remotes/origin")

		// act
		sha, date, err := client.RevisionInfo(context.Background(), "remotes/origin/develop")

		assert.Nil(t, err)
		assert.Equal(t, "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6", sha)
		assert.Equal(t, time.Date(2023, 8, 31, 8, 15, 0, 0, time.UTC), date)
	})
}

func TestCheckout(t *testing.T) {

	t.Run("CleansBeforeAndAfterCheckout", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runner := command.NewMockRunner(ctrl)

		options := command.RunOptions{Dir: "/data/openmc"}
		gomock.InOrder(
			runner.EXPECT().Run(gomock.Any(), options, "git", "clean", "-fdx").Return(nil),
			runner.EXPECT().Run(gomock.Any(), options, "git", "reset", "--hard", "HEAD").Return(nil),
			runner.EXPECT().Run(gomock.Any(), options, "git", "checkout", "4b271c7ba3c3").Return(nil),
			runner.EXPECT().Run(gomock.Any(), options, "git", "clean", "-fdx").Return(nil),
			runner.EXPECT().Run(gomock.Any(), options, "git", "submodule", "update", "--init").Return(nil),
		)

		client := NewClient(runner, "/data/openmc", "remotes/origin")

		// act
		err := client.Checkout(context.Background(), "4b271c7ba3c3")

		assert.Nil(t, err)
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runner := command.NewMockRunner(ctrl)

		options := command.RunOptions{Dir: "/data/openmc"}
		runner.EXPECT().Run(gomock.Any(), options, "git", "clean", "-fdx").
			Return(&command.ExitError{Cmd: "git clean -fdx", ExitCode: 1})

		client := NewClient(runner, "/data/openmc", "remotes/origin")

		// act
		err := client.Checkout(context.Background(), "4b271c7ba3c3")

		assert.NotNil(t, err)
	})
}
