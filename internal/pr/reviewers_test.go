package pr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReviewers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "github": [{"name": "Alice", "username": "alice"}, {"name": "No Handle"}],
  "default": [{"name": "Bob", "email": "bob@example.com", "username": "bob"}]
}`), 0o644))

	set, err := LoadReviewers(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice"}, set.Usernames("github"))
	assert.Equal(t, []string{"bob"}, set.Usernames("bitbucket"))
	assert.Equal(t, []Reviewer{{Name: "Bob", Email: "bob@example.com", Username: "bob"}}, set.For("gitlab"))
}

func TestLoadReviewersMissing(t *testing.T) {
	set, err := LoadReviewers(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, set.For("github"))

	set, err = LoadReviewers("")
	require.NoError(t, err)
	assert.Empty(t, set.Usernames("github"))
}

func TestLoadReviewersInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := LoadReviewers(path)
	assert.ErrorContains(t, err, "invalid reviewers file")
}
