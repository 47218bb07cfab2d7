// Package git reads the state of the local repository and produces the diff
// a pull request description is generated from.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranch is used when origin does not advertise its HEAD.
const DefaultBranch = "main"

const originRemote = "origin"

// Repository describes the repository genpr runs in.
type Repository struct {
	Root          string
	CurrentBranch string
	DefaultBranch string
	RemoteURL     string

	repo *gogit.Repository
}

// Open finds the repository containing path.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, ErrNotRepository
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to diff.
		return nil, ErrNotRepository
	}

	r := &Repository{
		Root:          wt.Filesystem.Root(),
		CurrentBranch: currentBranch(repo),
		DefaultBranch: defaultBranch(repo),
		repo:          repo,
	}
	if remote, err := repo.Remote(originRemote); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			r.RemoteURL = urls[0]
		}
	}
	return r, nil
}

// currentBranch mirrors `git rev-parse --abbrev-ref HEAD`, including for an
// unborn branch and "HEAD" when detached.
func currentBranch(repo *gogit.Repository) string {
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "HEAD"
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short()
	}
	return "HEAD"
}

func defaultBranch(repo *gogit.Repository) string {
	ref, err := repo.Reference(plumbing.NewRemoteHEADReferenceName(originRemote), false)
	if err != nil || ref.Type() != plumbing.SymbolicReference {
		return DefaultBranch
	}
	name := strings.TrimPrefix(ref.Target().String(), "refs/remotes/"+originRemote+"/")
	if name == "" || name == ref.Target().String() {
		return DefaultBranch
	}
	return name
}

// OnDefaultBranch reports whether the current branch is the default one.
func (r *Repository) OnDefaultBranch() bool {
	return r.CurrentBranch == r.DefaultBranch
}

// run executes git in the repository root and returns its stdout.
func (r *Repository) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", r.Root}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %s", args[0], msg)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return stdout.String(), nil
}
