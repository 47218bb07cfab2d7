package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
)

// Differ produces the diff of the pending work in a repository.
type Differ struct {
	Repo *Repository
}

// NewDiffer returns a Differ for repo.
func NewDiffer(repo *Repository) *Differ {
	return &Differ{Repo: repo}
}

// CheckChanges returns ErrNoChanges unless there are local changes, or the
// current branch is not the default one and has commits or remote changes
// of its own.
func (d *Differ) CheckChanges(ctx context.Context) error {
	status := d.Repo.Status(ctx)
	if status.HasLocalChanges {
		return nil
	}
	if !d.Repo.OnDefaultBranch() && (status.HasUnpushedCommits || status.HasRemoteChanges) {
		return nil
	}
	return ErrNoChanges
}

// Generate returns the staged diff, else the unstaged diff, else the diff of
// the current branch against origin's default branch. When savePath is not
// empty the diff is also written there.
func (d *Differ) Generate(ctx context.Context, savePath string) (string, error) {
	diff, err := d.generate(ctx, savePath)
	if err != nil && !errors.Is(err, ErrNotRepository) && !errors.Is(err, ErrNoChanges) {
		return "", fmt.Errorf("failed to generate git diff: %w", err)
	}
	return diff, err
}

func (d *Differ) generate(ctx context.Context, savePath string) (string, error) {
	if d.Repo == nil {
		return "", ErrNotRepository
	}
	if err := d.CheckChanges(ctx); err != nil {
		return "", err
	}
	log := clog.FromContext(ctx)

	diff, err := d.Repo.run(ctx, "diff", "--staged")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(diff) != "" {
		log.Debug("Using staged changes")
	} else {
		if diff, err = d.Repo.run(ctx, "diff"); err != nil {
			return "", err
		}
		if strings.TrimSpace(diff) != "" {
			log.Debug("Using unstaged changes")
		}
	}
	if strings.TrimSpace(diff) == "" {
		log.Debugf("Comparing %s against origin/%s", d.Repo.CurrentBranch, d.Repo.DefaultBranch)
		if diff, err = d.Repo.run(ctx, "diff", "origin/"+d.Repo.DefaultBranch+"..."+d.Repo.CurrentBranch); err != nil {
			return "", err
		}
	}
	if strings.TrimSpace(diff) == "" {
		return "", ErrNoChanges
	}

	if savePath != "" {
		if err := os.WriteFile(savePath, []byte(diff), 0644); err != nil {
			return "", err
		}
	}
	return diff, nil
}
