package git

import (
	"fmt"
	"strings"

	"github.com/waigani/diffparser"
)

// FileChange is one file touched by a diff.
type FileChange struct {
	Path    string
	Status  string
	Added   int
	Removed int
}

// Summary is a per-file overview of a diff.
type Summary struct {
	Files   []FileChange
	Added   int
	Removed int
}

// Summarize parses a unified diff into per-file line counts.
func Summarize(diff string) (Summary, error) {
	parsed, err := diffparser.Parse(diff)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to parse diff: %w", err)
	}

	var s Summary
	for _, f := range parsed.Files {
		fc := FileChange{Path: f.NewName, Status: "modified"}
		switch f.Mode {
		case diffparser.NEW:
			fc.Status = "added"
		case diffparser.DELETED:
			fc.Status = "deleted"
			fc.Path = f.OrigName
		}
		if fc.Path == "" {
			fc.Path = f.OrigName
		}
		for _, h := range f.Hunks {
			for _, l := range h.WholeRange.Lines {
				switch l.Mode {
				case diffparser.ADDED:
					fc.Added++
				case diffparser.REMOVED:
					fc.Removed++
				}
			}
		}
		s.Added += fc.Added
		s.Removed += fc.Removed
		s.Files = append(s.Files, fc)
	}
	return s, nil
}

// String renders the summary like the last line of `git diff --stat`.
func (s Summary) String() string {
	files := "files"
	if len(s.Files) == 1 {
		files = "file"
	}
	return fmt.Sprintf("%d %s changed, %d insertions(+), %d deletions(-)", len(s.Files), files, s.Added, s.Removed)
}

// FileList renders one line per file, e.g. "M cmd/root.go (+3 -1)".
func (s Summary) FileList() string {
	var b strings.Builder
	for _, f := range s.Files {
		fmt.Fprintf(&b, "%s %s (+%d -%d)\n", strings.ToUpper(f.Status[:1]), f.Path, f.Added, f.Removed)
	}
	return b.String()
}
