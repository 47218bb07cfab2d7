// Package hosting opens pull requests on the platform hosting the origin
// remote, through its API when credentials are configured and through the
// browser otherwise.
package hosting

import (
	"errors"
	"regexp"
	"strings"
)

// Platform is a git hosting service.
type Platform string

const (
	Bitbucket Platform = "bitbucket"
	GitHub    Platform = "github"
	GitLab    Platform = "gitlab"
	Unknown   Platform = "unknown"
)

// DetectPlatform infers the hosting platform from a remote URL.
func DetectPlatform(remoteURL string) Platform {
	switch {
	case strings.Contains(remoteURL, "bitbucket.org"):
		return Bitbucket
	case strings.Contains(remoteURL, "github.com"):
		return GitHub
	case strings.Contains(remoteURL, "gitlab.com"):
		return GitLab
	default:
		return Unknown
	}
}

var (
	bitbucketSSH   = regexp.MustCompile(`^git@bitbucket\.org:([^/]+)/([^/]+?)(?:\.git)?/?$`)
	bitbucketHTTPS = regexp.MustCompile(`^https://(?:[^@/]+@)?bitbucket\.org/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	githubSSH      = regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?/?$`)
	githubHTTPS    = regexp.MustCompile(`^https://(?:[^@/]+@)?github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// ErrUnsupportedRemote is returned for remotes that are neither SSH nor HTTPS.
var ErrUnsupportedRemote = errors.New("Unsupported remote URL format")

// BitbucketRepo identifies a Bitbucket repository.
type BitbucketRepo struct {
	Workspace  string
	Repository string
}

// GitHubRepo identifies a GitHub repository.
type GitHubRepo struct {
	Owner      string
	Repository string
}

// ParseBitbucketRemote extracts the workspace and repository from an SSH or
// HTTPS Bitbucket remote.
func ParseBitbucketRemote(remoteURL string) (BitbucketRepo, error) {
	owner, repo, err := parseRemote(remoteURL, bitbucketSSH, bitbucketHTTPS, "Bitbucket")
	if err != nil {
		return BitbucketRepo{}, err
	}
	return BitbucketRepo{Workspace: owner, Repository: repo}, nil
}

// ParseGitHubRemote extracts the owner and repository from an SSH or HTTPS
// GitHub remote.
func ParseGitHubRemote(remoteURL string) (GitHubRepo, error) {
	owner, repo, err := parseRemote(remoteURL, githubSSH, githubHTTPS, "GitHub")
	if err != nil {
		return GitHubRepo{}, err
	}
	return GitHubRepo{Owner: owner, Repository: repo}, nil
}

func parseRemote(remoteURL string, ssh, https *regexp.Regexp, platform string) (string, string, error) {
	var re *regexp.Regexp
	var kind string
	switch {
	case strings.HasPrefix(remoteURL, "git@"):
		re, kind = ssh, "SSH"
	case strings.HasPrefix(remoteURL, "https://"):
		re, kind = https, "HTTPS"
	default:
		return "", "", ErrUnsupportedRemote
	}
	m := re.FindStringSubmatch(remoteURL)
	if m == nil {
		return "", "", errors.New("Invalid " + platform + " " + kind + " URL format")
	}
	return m[1], m[2], nil
}
