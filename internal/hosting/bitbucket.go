package hosting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/chainguard-dev/clog"
)

const (
	bitbucketAPIBase = "https://api.bitbucket.org/2.0/repositories"
	bitbucketWebBase = "https://bitbucket.org"
)

type bitbucketBranch struct {
	Branch struct {
		Name string `json:"name"`
	} `json:"branch"`
}

type bitbucketPRRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Source      bitbucketBranch `json:"source"`
	Destination bitbucketBranch `json:"destination"`
}

type bitbucketPRResponse struct {
	ID int `json:"id"`
}

// BitbucketPublisher creates pull requests through the Bitbucket Cloud REST API.
type BitbucketPublisher struct {
	repo  BitbucketRepo
	email string
	token string
	opts  *options
}

// NewBitbucketPublisher creates a BitbucketPublisher. Without both email and
// token it falls back to the browser.
func NewBitbucketPublisher(repo BitbucketRepo, email, token string, opts ...Option) *BitbucketPublisher {
	return &BitbucketPublisher{repo: repo, email: email, token: token, opts: newOptions(opts)}
}

// Platform implements Publisher.
func (b *BitbucketPublisher) Platform() Platform {
	return Bitbucket
}

// Publish implements Publisher. Reviewers are not sent to Bitbucket.
func (b *BitbucketPublisher) Publish(ctx context.Context, pr PullRequest) (Result, error) {
	pr = pr.withDefaults()
	log := clog.FromContext(ctx).With("platform", Bitbucket)

	if b.email == "" || b.token == "" {
		u := b.newPRURL(pr.SourceBranch)
		log.Infof("No Bitbucket credentials, opening %s", u)
		if err := b.opts.open(u); err != nil {
			return Result{}, err
		}
		return Result{URL: u}, nil
	}

	id, err := b.create(ctx, pr)
	if err != nil {
		return Result{}, err
	}
	u := fmt.Sprintf("%s/%s/%s/pull-requests/%d", b.opts.bitbucketWeb, b.repo.Workspace, b.repo.Repository, id)
	if err := b.opts.open(u); err != nil {
		log.Warnf("Failed to open %s: %v", u, err)
	}
	return Result{URL: u, Created: true}, nil
}

func (b *BitbucketPublisher) newPRURL(branch string) string {
	return fmt.Sprintf("%s/%s/%s/pull-requests/new?source=%s",
		b.opts.bitbucketWeb, b.repo.Workspace, b.repo.Repository, url.QueryEscape(branch))
}

func (b *BitbucketPublisher) create(ctx context.Context, pr PullRequest) (int, error) {
	var body bitbucketPRRequest
	body.Title = pr.Title
	body.Description = pr.Description
	body.Source.Branch.Name = pr.SourceBranch
	body.Destination.Branch.Name = pr.DestinationBranch

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/pullrequests", strings.TrimSuffix(b.opts.bitbucketAPI, "/"), b.repo.Workspace, b.repo.Repository)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(b.email, b.token)

	resp, err := b.opts.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("Bitbucket API error: %d - %s", resp.StatusCode, string(respBody))
	}

	var created bitbucketPRResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return 0, fmt.Errorf("failed to decode Bitbucket response: %w", err)
	}
	return created.ID, nil
}
