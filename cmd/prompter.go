package cmd

import "github.com/sebrandon1/genpr/internal/ui"

// prompter asks the user for input. Tests replace it with a scripted one.
type prompter interface {
	Select(prompt string, items []ui.SelectItem[string], initial string) (string, error)
	Input(prompt string, opts ui.InputOptions) (string, error)
	Confirm(prompt string, defaultYes bool) (bool, error)
}

// terminalPrompter runs the bubbletea prompts.
type terminalPrompter struct{}

func (terminalPrompter) Select(prompt string, items []ui.SelectItem[string], initial string) (string, error) {
	r, err := ui.Select(prompt, items, initial)
	return ui.Value(r, err)
}

func (terminalPrompter) Input(prompt string, opts ui.InputOptions) (string, error) {
	r, err := ui.Input(prompt, opts)
	return ui.Value(r, err)
}

func (terminalPrompter) Confirm(prompt string, defaultYes bool) (bool, error) {
	r, err := ui.Confirm(prompt, defaultYes)
	return ui.Value(r, err)
}
