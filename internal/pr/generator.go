// Package pr turns a git diff into a pull request title and description.
package pr

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/sebrandon1/genpr/internal/ai"
	"github.com/sebrandon1/genpr/internal/git"
)

// ContentGenerator is the part of ai.Manager the generator uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (ai.Response, error)
	GenerateContentWithProvider(ctx context.Context, name, prompt string) (ai.Response, error)
}

// DiffSource produces the diff to describe.
type DiffSource interface {
	Generate(ctx context.Context, savePath string) (string, error)
}

// Options are the user's inputs for one generation.
type Options struct {
	Type string
	// Title and Ticket are used as given; split user input with ParseTitle
	// first. An empty Title is generated by the AI.
	Title       string
	Ticket      string
	Explanation string
	// Provider, when set, uses only that provider with no fallback.
	Provider string
	// SaveDiffPath, when set, also writes the diff there.
	SaveDiffPath string
}

// Result is a generated pull request.
type Result struct {
	Title           string
	Body            string
	FullDescription string
}

// Generator builds pull request descriptions.
type Generator struct {
	ai       ContentGenerator
	diff     DiffSource
	progress func(step string)
}

// NewGenerator returns a Generator.
func NewGenerator(gen ContentGenerator, diff DiffSource) *Generator {
	return &Generator{ai: gen, diff: diff}
}

// WithProgress makes Generate report each step as it starts.
func (g *Generator) WithProgress(fn func(step string)) *Generator {
	g.progress = fn
	return g
}

func (g *Generator) step(msg string) {
	if g.progress != nil {
		g.progress(msg)
	}
}

// Generate produces the title and description. A title is only requested
// from the AI when the user did not give one.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	log := clog.FromContext(ctx)

	g.step("Generating git diff...")
	diff, err := g.diff.Generate(ctx, opts.SaveDiffPath)
	if err != nil {
		return nil, err
	}
	g.step("Generating PR description...")

	var files string
	if summary, err := git.Summarize(diff); err != nil {
		log.Debugf("Skipping diff summary: %v", err)
	} else {
		log.Debugf("Diff: %s", summary)
		files = summary.FileList()
	}

	ticket := strings.TrimSpace(opts.Ticket)
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		prompt, err := TitlePrompt(diff, opts.Explanation, files)
		if err != nil {
			return nil, err
		}
		resp, err := g.generate(ctx, opts.Provider, prompt)
		if err != nil {
			return nil, err
		}
		title = cleanTitle(resp.Text)
	}
	formatted := FormatTitle(opts.Type, title, ticket)

	prompt, err := DescriptionPrompt(diff, opts.Explanation, files)
	if err != nil {
		return nil, err
	}
	resp, err := g.generate(ctx, opts.Provider, prompt)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:           formatted,
		Body:            resp.Text,
		FullDescription: fmt.Sprintf("# 🔖 %s\n\n%s", formatted, resp.Text),
	}, nil
}

func (g *Generator) generate(ctx context.Context, provider, prompt string) (ai.Response, error) {
	if provider != "" {
		return g.ai.GenerateContentWithProvider(ctx, provider, prompt)
	}
	return g.ai.GenerateContent(ctx, prompt)
}

// Save writes the description to path.
func Save(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to save PR description: %w", err)
	}
	return nil
}
