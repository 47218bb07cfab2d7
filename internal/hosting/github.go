package hosting

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

const githubWebBase = "https://github.com"

// GitHubPublisher creates pull requests through the GitHub REST API.
type GitHubPublisher struct {
	repo   GitHubRepo
	client *github.Client
	opts   *options
}

// NewGitHubPublisher creates a GitHubPublisher. An empty token makes it open
// the compare page in the browser instead.
func NewGitHubPublisher(repo GitHubRepo, token string, opts ...Option) (*GitHubPublisher, error) {
	o := newOptions(opts)
	g := &GitHubPublisher{repo: repo, opts: o}
	if token == "" {
		return g, nil
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, o.httpClient)
	client := github.NewClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})))
	if o.githubBaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(o.githubBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		client.BaseURL = base
	}
	g.client = client
	return g, nil
}

// Platform implements Publisher.
func (g *GitHubPublisher) Platform() Platform {
	return GitHub
}

// Publish implements Publisher. Reviewers are requested after the pull
// request is created; a failure there is logged and does not fail the call.
func (g *GitHubPublisher) Publish(ctx context.Context, pr PullRequest) (Result, error) {
	pr = pr.withDefaults()
	log := clog.FromContext(ctx).With("platform", GitHub)

	if g.client == nil {
		u := fmt.Sprintf("%s/%s/%s/compare/%s:%s?expand=1", githubWebBase, g.repo.Owner, g.repo.Repository, g.repo.Owner, pr.SourceBranch)
		log.Infof("No GitHub token, opening %s", u)
		if err := g.opts.open(u); err != nil {
			return Result{}, err
		}
		return Result{URL: u}, nil
	}

	created, _, err := g.client.PullRequests.Create(ctx, g.repo.Owner, g.repo.Repository, &github.NewPullRequest{
		Title: github.Ptr(pr.Title),
		Body:  github.Ptr(pr.Description),
		Head:  github.Ptr(pr.SourceBranch),
		Base:  github.Ptr(pr.DestinationBranch),
	})
	if err != nil {
		return Result{}, fmt.Errorf("GitHub API error: %w", err)
	}
	log.Infof("Created PR #%d: %s", created.GetNumber(), created.GetHTMLURL())

	if len(pr.Reviewers) > 0 {
		if _, _, err := g.client.PullRequests.RequestReviewers(ctx, g.repo.Owner, g.repo.Repository, created.GetNumber(), github.ReviewersRequest{
			Reviewers: pr.Reviewers,
		}); err != nil {
			log.Warnf("Failed to request reviewers: %v", err)
		}
	}

	u := created.GetHTMLURL()
	if err := g.opts.open(u); err != nil {
		log.Warnf("Failed to open %s: %v", u, err)
	}
	return Result{URL: u, Created: true}, nil
}
