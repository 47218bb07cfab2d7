package git

import (
	"context"
	"strings"
)

// Status summarizes what could go into a pull request.
type Status struct {
	HasLocalChanges    bool
	HasUnpushedCommits bool
	HasRemoteChanges   bool
}

// Status inspects the worktree and the branch against origin. Failures of the
// individual checks count as "no changes".
func (r *Repository) Status(ctx context.Context) Status {
	return Status{
		HasLocalChanges:    r.hasLocalChanges(),
		HasUnpushedCommits: r.nonEmpty(ctx, "log", "origin/"+r.DefaultBranch+".."+r.CurrentBranch),
		HasRemoteChanges:   r.nonEmpty(ctx, "diff", "origin/"+r.DefaultBranch+"...origin/"+r.CurrentBranch),
	}
}

func (r *Repository) hasLocalChanges() bool {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false
	}
	status, err := wt.Status()
	if err != nil {
		return false
	}
	return !status.IsClean()
}

func (r *Repository) nonEmpty(ctx context.Context, args ...string) bool {
	out, err := r.run(ctx, args...)
	return err == nil && strings.TrimSpace(out) != ""
}
