package hosting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	testCases := []struct {
		url  string
		want Platform
	}{
		{"git@bitbucket.org:team/app.git", Bitbucket},
		{"https://me@bitbucket.org/team/app.git", Bitbucket},
		{"git@github.com:acme/widgets.git", GitHub},
		{"https://github.com/acme/widgets", GitHub},
		{"git@gitlab.com:group/proj.git", GitLab},
		{"ssh://git.internal/repo.git", Unknown},
		{"", Unknown},
	}
	for _, c := range testCases {
		assert.Equal(t, c.want, DetectPlatform(c.url), c.url)
	}
}

func TestParseBitbucketRemote(t *testing.T) {
	testCases := []struct {
		url     string
		want    BitbucketRepo
		wantErr string
	}{
		{url: "git@bitbucket.org:team/app.git", want: BitbucketRepo{"team", "app"}},
		{url: "https://bitbucket.org/team/app.git", want: BitbucketRepo{"team", "app"}},
		{url: "https://someone@bitbucket.org/team/app.git", want: BitbucketRepo{"team", "app"}},
		{url: "https://bitbucket.org/team/app", want: BitbucketRepo{"team", "app"}},
		{url: "git@github.com:team/app.git", wantErr: "Invalid Bitbucket SSH URL format"},
		{url: "https://github.com/team/app.git", wantErr: "Invalid Bitbucket HTTPS URL format"},
		{url: "ssh://bitbucket.org/team/app.git", wantErr: "Unsupported remote URL format"},
	}
	for _, c := range testCases {
		got, err := ParseBitbucketRemote(c.url)
		if c.wantErr != "" {
			assert.EqualError(t, err, c.wantErr, c.url)
			continue
		}
		assert.NoError(t, err, c.url)
		assert.Equal(t, c.want, got, c.url)
	}
}

func TestParseGitHubRemote(t *testing.T) {
	testCases := []struct {
		url     string
		want    GitHubRepo
		wantErr string
	}{
		{url: "git@github.com:acme/widgets.git", want: GitHubRepo{"acme", "widgets"}},
		{url: "https://github.com/acme/widgets.git", want: GitHubRepo{"acme", "widgets"}},
		{url: "https://github.com/acme/my.repo", want: GitHubRepo{"acme", "my.repo"}},
		{url: "git@bitbucket.org:acme/widgets.git", wantErr: "Invalid GitHub SSH URL format"},
		{url: "https://github.com/acme", wantErr: "Invalid GitHub HTTPS URL format"},
		{url: "file:///tmp/repo", wantErr: "Unsupported remote URL format"},
	}
	for _, c := range testCases {
		got, err := ParseGitHubRemote(c.url)
		if c.wantErr != "" {
			assert.EqualError(t, err, c.wantErr, c.url)
			continue
		}
		assert.NoError(t, err, c.url)
		assert.Equal(t, c.want, got, c.url)
	}
}
