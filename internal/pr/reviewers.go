package pr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Reviewer is one entry of reviewers.json.
type Reviewer struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// ReviewerSet maps a platform name ("github", "bitbucket", "gitlab") to its
// reviewers. The "default" entry is used for platforms without their own.
type ReviewerSet map[string][]Reviewer

const defaultReviewers = "default"

// LoadReviewers reads a reviewers.json file. An empty path or a missing file
// yields an empty set.
func LoadReviewers(path string) (ReviewerSet, error) {
	if path == "" {
		return ReviewerSet{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ReviewerSet{}, nil
	}
	if err != nil {
		return nil, err
	}
	var set ReviewerSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("invalid reviewers file %s: %w", path, err)
	}
	if set == nil {
		set = ReviewerSet{}
	}
	return set, nil
}

// For returns the reviewers of platform, or the default ones.
func (s ReviewerSet) For(platform string) []Reviewer {
	if r, ok := s[platform]; ok && len(r) > 0 {
		return r
	}
	return s[defaultReviewers]
}

// Usernames returns the usernames of the reviewers of platform, skipping
// entries without one.
func (s ReviewerSet) Usernames(platform string) []string {
	var out []string
	for _, r := range s.For(platform) {
		if r.Username != "" {
			out = append(out, r.Username)
		}
	}
	return out
}
