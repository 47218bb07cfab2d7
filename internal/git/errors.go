package git

import "errors"

var (
	// ErrNotRepository is returned when the working directory is not inside a git repository.
	ErrNotRepository = errors.New("Not in a git repository. Please run this command from a git repository.")

	// ErrNoChanges is returned when there is nothing to describe.
	ErrNoChanges = errors.New("No changes found in the repository.")
)
