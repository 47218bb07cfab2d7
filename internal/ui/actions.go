package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
	"github.com/sebrandon1/genpr/internal/hosting"
)

// Action is what to do with a generated description.
type Action string

const (
	ActionClipboard Action = "clipboard"
	ActionEditor    Action = "editor"
	ActionBitbucket Action = "bitbucket"
	ActionGitHub    Action = "github"
	// ActionPR opens the pull request on the platform the remote is hosted on.
	ActionPR      Action = "pr"
	ActionBoth    Action = "both"
	ActionNothing Action = "nothing"
)

// Actions lists the output actions in the order they are offered.
var Actions = []SelectItem[Action]{
	{Title: "📋 Copy to clipboard", Value: ActionClipboard},
	{Title: "📝 Open in editor", Value: ActionEditor},
	{Title: "🔗 Open PR in Bitbucket", Value: ActionBitbucket},
	{Title: "🐙 Open PR in GitHub", Value: ActionGitHub},
	{Title: "🚀 Open PR on the remote's platform", Value: ActionPR},
	{Title: "📋 + 📝 Both", Value: ActionBoth},
	{Title: "🚫 Do nothing", Value: ActionNothing},
}

// ParseAction validates an action name given on the command line.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	valid := make([]string, 0, len(Actions))
	for _, a := range Actions {
		if string(a.Value) == name {
			return a.Value, nil
		}
		valid = append(valid, string(a.Value))
	}
	return "", fmt.Errorf("unknown action %q, expected one of: %s", name, strings.Join(valid, ", "))
}

// PROpener opens a pull request on the given platform. hosting.Unknown asks
// for the platform to be detected from the remote.
type PROpener func(ctx context.Context, platform hosting.Platform) error

// ActionRunner carries out output actions.
type ActionRunner struct {
	Display *Display
	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(string) error
	// OpenFile defaults to the system handler for the file type.
	OpenFile func(string) error
	OpenPR   PROpener
}

// NewActionRunner returns an ActionRunner using the system clipboard and file handler.
func NewActionRunner(d *Display, openPR PROpener) *ActionRunner {
	return &ActionRunner{
		Display:         d,
		CopyToClipboard: clipboard.WriteAll,
		OpenFile:        browser.OpenFile,
		OpenPR:          openPR,
	}
}

// Run performs action on the description saved at path.
func (r *ActionRunner) Run(ctx context.Context, action Action, path string) error {
	switch action {
	case ActionClipboard:
		if err := r.copy(path); err != nil {
			return err
		}
		r.Display.Success("Copied to clipboard.")
	case ActionEditor:
		if err := r.OpenFile(path); err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		r.Display.Success("Opened in editor.")
	case ActionBitbucket:
		return r.OpenPR(ctx, hosting.Bitbucket)
	case ActionGitHub:
		return r.OpenPR(ctx, hosting.GitHub)
	case ActionPR:
		return r.OpenPR(ctx, hosting.Unknown)
	case ActionBoth:
		if err := r.copy(path); err != nil {
			return err
		}
		if err := r.OpenFile(path); err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		r.Display.Success("Copied and opened.")
	case ActionNothing:
		r.Display.Info("Skipping clipboard and editor.")
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

func (r *ActionRunner) copy(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := r.CopyToClipboard(string(content)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
