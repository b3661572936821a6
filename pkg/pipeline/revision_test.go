package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/shikhar413/openmc-performance/clients/git"
	"github.com/shikhar413/openmc-performance/config"
)

func TestResolveRevision(t *testing.T) {

	commitDate := time.Date(2023, 8, 31, 10, 15, 0, 0, time.UTC)

	t.Run("ResolvesBranchNameAsBranch", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gitClient := git.NewMockClient(ctrl)

		gitClient.EXPECT().Fetch(gomock.Any()).Return(nil)
		gitClient.EXPECT().ParseRevision(gomock.Any(), "develop").
			Return(git.Revision{IsBranch: true, RevName: "remotes/origin/develop", SHA: "4b271c7ba3c3"}, nil)
		gitClient.EXPECT().RevisionInfo(gomock.Any(), "remotes/origin/develop").
			Return("4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6", commitDate, nil)

		// act
		record, err := ResolveRevision(context.Background(), zerolog.Nop(), gitClient, "develop", "", "", true)

		assert.Nil(t, err)
		assert.Equal(t, "develop", record.Branch)
		assert.Equal(t, "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6", record.Revision)
		assert.Equal(t, commitDate, record.CommitDate)
	})

	t.Run("FallsBackToDefaultBranchForPlainCommit", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gitClient := git.NewMockClient(ctrl)

		gitClient.EXPECT().ParseRevision(gomock.Any(), "4b271c7").
			Return(git.Revision{IsBranch: false, RevName: "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6"}, nil)
		gitClient.EXPECT().RevisionInfo(gomock.Any(), "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6").
			Return("4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6", commitDate, nil)

		// act
		record, err := ResolveRevision(context.Background(), zerolog.Nop(), gitClient, "4b271c7", "", "", false)

		assert.Nil(t, err)
		assert.Equal(t, config.DefaultBranch, record.Branch)
	})

	t.Run("SkipsFetchWhenUpdateDisabled", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gitClient := git.NewMockClient(ctrl)

		gitClient.EXPECT().ParseRevision(gomock.Any(), "develop").
			Return(git.Revision{IsBranch: true, RevName: "remotes/origin/develop"}, nil)
		gitClient.EXPECT().RevisionInfo(gomock.Any(), "remotes/origin/develop").
			Return("4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6", commitDate, nil)

		// act
		_, err := ResolveRevision(context.Background(), zerolog.Nop(), gitClient, "develop", "", "", false)

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorWhenBranchArgumentIsNoBranch", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gitClient := git.NewMockClient(ctrl)

		gitClient.EXPECT().ParseRevision(gomock.Any(), "4b271c7").
			Return(git.Revision{IsBranch: false, RevName: "4b271c7"}, nil)

		// act
		_, err := ResolveRevision(context.Background(), zerolog.Nop(), gitClient, "develop", "4b271c7", "", false)

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorForInconsistentBranches", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gitClient := git.NewMockClient(ctrl)

		gitClient.EXPECT().ParseRevision(gomock.Any(), "main").
			Return(git.Revision{IsBranch: true, RevName: "remotes/origin/main"}, nil)
		gitClient.EXPECT().ParseRevision(gomock.Any(), "develop").
			Return(git.Revision{IsBranch: true, RevName: "remotes/origin/develop"}, nil)

		// act
		_, err := ResolveRevision(context.Background(), zerolog.Nop(), gitClient, "develop", "main", "", false)

		assert.NotNil(t, err)
	})
}

func TestArtifactFilename(t *testing.T) {

	record := RevisionRecord{
		Revision:   "4b271c7ba3c3c7d95d2f7f2f76de8d12d4fdb6b6",
		Branch:     "develop",
		CommitDate: time.Date(2023, 8, 31, 10, 15, 0, 0, time.UTC),
	}

	t.Run("CombinesDateBranchAndShortRevision", func(t *testing.T) {

		// act
		filename := record.ArtifactFilename()

		assert.Equal(t, "2023-08-31_10-15-develop-4b271c7ba3c3.json", filename)
	})

	t.Run("IsDeterministic", func(t *testing.T) {

		// act
		first := record.ArtifactFilename()
		second := record.ArtifactFilename()

		assert.Equal(t, first, second)
	})

	t.Run("EmbedsPatchName", func(t *testing.T) {

		patched := record
		patched.Patch = "/patches/faster-tally.diff"

		// act
		filename := patched.ArtifactFilename()

		assert.Equal(t, "2023-08-31_10-15-develop-4b271c7ba3c3-patch-faster-tally.json", filename)
	})

	t.Run("PatchedArtifactLivesInPatchDirectory", func(t *testing.T) {

		cfg := &config.Config{JSONDir: "/data/json"}
		patched := record
		patched.Patch = "/patches/faster-tally.diff"

		// act
		path := patched.ArtifactPath(cfg)

		assert.Equal(t, "/data/json/patch/2023-08-31_10-15-develop-4b271c7ba3c3-patch-faster-tally.json", path)
	})

	t.Run("UploadedPathSharesBasename", func(t *testing.T) {

		cfg := &config.Config{JSONDir: "/data/json"}

		// act
		path := record.UploadedPath(cfg)

		assert.Equal(t, "/data/json/uploaded/2023-08-31_10-15-develop-4b271c7ba3c3.json", path)
	})
}
