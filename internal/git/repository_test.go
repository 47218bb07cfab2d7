package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository on main with one committed file.
func initTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.Main},
	})
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return dir, repo
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestOpenNotRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestOpenRepository(t *testing.T) {
	dir, repo := initTestRepo(t)
	_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:acme/widgets.git"},
	})
	require.NoError(t, err)

	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	r, err := Open(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, r.Root)
	assert.Equal(t, "main", r.CurrentBranch)
	assert.Equal(t, "main", r.DefaultBranch)
	assert.Equal(t, "git@github.com:acme/widgets.git", r.RemoteURL)
	assert.True(t, r.OnDefaultBranch())
}

func TestOpenDefaultBranchFromOriginHead(t *testing.T) {
	dir, repo := initTestRepo(t)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewSymbolicReference(
		plumbing.NewRemoteHEADReferenceName("origin"),
		plumbing.NewRemoteReferenceName("origin", "develop"),
	)))

	r, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "develop", r.DefaultBranch)
	assert.False(t, r.OnDefaultBranch())
	assert.Empty(t, r.RemoteURL)
}

func TestOpenFeatureBranch(t *testing.T) {
	dir, repo := initTestRepo(t)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature/login"),
		Create: true,
	}))

	r, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "feature/login", r.CurrentBranch)
}

func TestStatusLocalChanges(t *testing.T) {
	requireGit(t)
	dir, _ := initTestRepo(t)

	r, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, r.Status(context.Background()).HasLocalChanges)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0o644))
	status := r.Status(context.Background())
	assert.True(t, status.HasLocalChanges)
	// Without an origin these checks fail and count as no changes.
	assert.False(t, status.HasUnpushedCommits)
	assert.False(t, status.HasRemoteChanges)
}
