package hosting

import (
	"context"
	"errors"
	"net/http"

	"github.com/pkg/browser"
)

// ErrUnknownPlatform is returned when the remote is not hosted on a supported platform.
var ErrUnknownPlatform = errors.New("Unknown Git hosting platform. Supported platforms: Bitbucket, GitHub")

// PullRequest is what gets opened on the hosting platform.
type PullRequest struct {
	Title             string
	Description       string
	SourceBranch      string
	DestinationBranch string
	Reviewers         []string
}

// withDefaults fills in an empty title or description from the branch name.
func (pr PullRequest) withDefaults() PullRequest {
	if pr.Title == "" {
		pr.Title = "PR from " + pr.SourceBranch
	}
	if pr.Description == "" {
		pr.Description = "Pull request from branch: " + pr.SourceBranch
	}
	return pr
}

// Result reports where the pull request can be found.
type Result struct {
	URL string
	// Created is false when no credentials were set and the platform's
	// "new pull request" page was opened instead.
	Created bool
}

// Publisher opens a pull request on one platform.
type Publisher interface {
	Platform() Platform
	Publish(ctx context.Context, pr PullRequest) (Result, error)
}

// Opener shows a URL to the user.
type Opener func(url string) error

// Credentials holds the API credentials of every platform.
type Credentials struct {
	BitbucketEmail string
	BitbucketToken string
	GitHubToken    string
}

type options struct {
	open          Opener
	httpClient    *http.Client
	githubBaseURL string
	bitbucketAPI  string
	bitbucketWeb  string
}

// Option configures a Publisher.
type Option func(*options)

// WithOpener replaces the browser.
func WithOpener(open Opener) Option {
	return func(o *options) { o.open = open }
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithGitHubBaseURL points the GitHub client at another API root.
func WithGitHubBaseURL(u string) Option {
	return func(o *options) { o.githubBaseURL = u }
}

// WithBitbucketAPI points the Bitbucket publisher at another API root.
func WithBitbucketAPI(u string) Option {
	return func(o *options) { o.bitbucketAPI = u }
}

func newOptions(opts []Option) *options {
	o := &options{
		open:         browser.OpenURL,
		httpClient:   http.DefaultClient,
		bitbucketAPI: bitbucketAPIBase,
		bitbucketWeb: bitbucketWebBase,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewPublisher returns the publisher for platform, bound to the repository
// named by remoteURL.
func NewPublisher(platform Platform, remoteURL string, creds Credentials, opts ...Option) (Publisher, error) {
	switch platform {
	case Bitbucket:
		repo, err := ParseBitbucketRemote(remoteURL)
		if err != nil {
			return nil, err
		}
		return NewBitbucketPublisher(repo, creds.BitbucketEmail, creds.BitbucketToken, opts...), nil
	case GitHub:
		repo, err := ParseGitHubRemote(remoteURL)
		if err != nil {
			return nil, err
		}
		return NewGitHubPublisher(repo, creds.GitHubToken, opts...)
	default:
		return nil, ErrUnknownPlatform
	}
}

// DetectPublisher returns the publisher for the platform remoteURL is hosted on.
func DetectPublisher(remoteURL string, creds Credentials, opts ...Option) (Publisher, error) {
	return NewPublisher(DetectPlatform(remoteURL), remoteURL, creds, opts...)
}
