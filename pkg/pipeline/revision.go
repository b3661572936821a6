package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shikhar413/openmc-performance/clients/git"
	"github.com/shikhar413/openmc-performance/config"
)

const artifactDateLayout = "2006-01-02_15-04"

// RevisionRecord is the fully resolved identity of one pipeline run. It is
// immutable once resolved and drives both the output artifact path and the
// log file name.
type RevisionRecord struct {
	Revision   string
	Branch     string
	CommitDate time.Time
	Patch      string
}

// ResolveRevision resolves a user-supplied revision/branch pair against the
// repository into a RevisionRecord with a full commit hash and commit date.
func ResolveRevision(ctx context.Context, logger zerolog.Logger, gitClient git.Client, revision, branch, patch string, update bool) (RevisionRecord, error) {

	record := RevisionRecord{Patch: patch}

	if update {
		if err := gitClient.Fetch(ctx); err != nil {
			return record, err
		}
	}

	if branch != "" {
		resolved, err := gitClient.ParseRevision(ctx, branch)
		if err != nil {
			return record, err
		}
		if !resolved.IsBranch {
			return record, fmt.Errorf("%v is not a git branch", branch)
		}
		record.Branch = branch
	}

	resolved, err := gitClient.ParseRevision(ctx, revision)
	if err != nil {
		return record, err
	}
	if resolved.IsBranch {
		if record.Branch != "" && revision != record.Branch {
			return record, fmt.Errorf("inconsistent branches: revision=%v, branch=%v", revision, branch)
		}
		record.Branch = revision
	} else if record.Branch == "" {
		record.Branch = config.DefaultBranch
	}

	sha, date, err := gitClient.RevisionInfo(ctx, resolved.RevName)
	if err != nil {
		return record, err
	}
	record.Revision = sha
	record.CommitDate = date

	logger.Info().Msgf("Commit: branch=%v, revision=%v, date=%v", record.Branch, record.Revision, record.CommitDate)

	return record, nil
}

// ArtifactFilename returns the deterministic basename for this record's
// result file. A given (revision, branch, patch) tuple always maps to the
// same name.
func (r RevisionRecord) ArtifactFilename() string {
	filename := fmt.Sprintf("%v-%v-%v", r.CommitDate.Format(artifactDateLayout), r.Branch, shortRevision(r.Revision))
	if r.Patch != "" {
		patch := filepath.Base(r.Patch)
		patch = strings.TrimSuffix(patch, filepath.Ext(patch))
		filename = fmt.Sprintf("%v-patch-%v", filename, patch)
	}

	return filename + ".json"
}

// ArtifactPath returns the working path of the result file; patched builds
// get their own subdirectory so they can never collide with publishable
// results.
func (r RevisionRecord) ArtifactPath(cfg *config.Config) string {
	if r.Patch != "" {
		return filepath.Join(cfg.JSONPatchDir(), r.ArtifactFilename())
	}
	return filepath.Join(cfg.JSONDir, r.ArtifactFilename())
}

// UploadedPath returns the path the artifact is moved to once the publish
// endpoint has acknowledged it.
func (r RevisionRecord) UploadedPath(cfg *config.Config) string {
	return filepath.Join(cfg.UploadedJSONDir(), r.ArtifactFilename())
}

func shortRevision(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}
