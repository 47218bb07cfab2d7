package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sebrandon1/genpr/internal/ai"
	"github.com/sebrandon1/genpr/internal/config"
	"github.com/sebrandon1/genpr/internal/ui"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers Select and Input from a queue, in order.
type scriptedPrompter struct {
	answers []string
	confirm bool
	asked   []string
}

func (s *scriptedPrompter) next(prompt string) (string, error) {
	s.asked = append(s.asked, prompt)
	if len(s.answers) == 0 {
		return "", fmt.Errorf("unexpected prompt %q", prompt)
	}
	v := s.answers[0]
	s.answers = s.answers[1:]
	return v, nil
}

func (s *scriptedPrompter) Select(prompt string, _ []ui.SelectItem[string], _ string) (string, error) {
	return s.next(prompt)
}

func (s *scriptedPrompter) Input(prompt string, _ ui.InputOptions) (string, error) {
	return s.next(prompt)
}

func (s *scriptedPrompter) Confirm(prompt string, _ bool) (bool, error) {
	s.asked = append(s.asked, prompt)
	return s.confirm, nil
}

type testApp struct {
	*app
	out    *bytes.Buffer
	errOut *bytes.Buffer
	script *scriptedPrompter
}

// newTestApp returns an app with captured output, a scripted prompter and a
// private GENPR_HOME.
func newTestApp(t *testing.T, answers ...string) *testApp {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	p := &scriptedPrompter{answers: answers}
	return &testApp{
		app: &app{
			display:    ui.NewDisplay(out, errOut),
			prompt:     p,
			repoPath:   t.TempDir(),
			newManager: ai.FromConfig,
			newRunner:  ui.NewActionRunner,
		},
		out:    out,
		errOut: errOut,
		script: p,
	}
}

func managerWith(t *testing.T, providers ...ai.Provider) *ai.Manager {
	t.Helper()
	m, err := ai.NewManager(providers)
	require.NoError(t, err)
	return m
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// initTestRepo creates a repository on main with one committed file and
// origin pointing at remoteURL.
func initTestRepo(t *testing.T, remoteURL string) string {
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
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	if remoteURL != "" {
		_, err = repo.CreateRemote(&gogitconfig.RemoteConfig{Name: "origin", URLs: []string{remoteURL}})
		require.NoError(t, err)
	}
	return dir
}
