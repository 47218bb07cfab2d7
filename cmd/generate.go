package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/sebrandon1/genpr/internal/ai"
	"github.com/sebrandon1/genpr/internal/config"
	"github.com/sebrandon1/genpr/internal/git"
	"github.com/sebrandon1/genpr/internal/hosting"
	"github.com/sebrandon1/genpr/internal/pr"
	"github.com/sebrandon1/genpr/internal/ui"
	"github.com/spf13/cobra"
)

// app holds what a command needs to talk to the user and the outside world.
type app struct {
	display *ui.Display
	prompt  prompter
	// repoPath is where the repository lookup starts.
	repoPath string
	// openURL overrides the browser used by the hosting fallback.
	openURL    hosting.Opener
	newManager func(*config.Config) (*ai.Manager, error)
	newRunner  func(*ui.Display, ui.PROpener) *ui.ActionRunner
	// publisherOptions are appended to every publisher built.
	publisherOptions []hosting.Option
}

func newApp(cmd *cobra.Command) *app {
	return &app{
		display:    ui.NewDisplay(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		prompt:     terminalPrompter{},
		repoPath:   ".",
		newManager: ai.FromConfig,
		newRunner:  ui.NewActionRunner,
	}
}

// loadConfig reads the configuration and returns it with its directory.
func loadConfig(ctx context.Context) (*config.Config, string, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, "", err
	}
	envPath, err := config.EnvPath()
	if err != nil {
		return nil, "", err
	}
	clog.FromContext(ctx).Debugf("Loading configuration from %s", envPath)
	cfg, err := config.Load(ctx, envPath)
	if err != nil {
		return nil, "", err
	}
	return cfg, dir, nil
}

// generate runs the whole flow: collect inputs, generate, save, then act on
// the result.
func (a *app) generate(ctx context.Context, args []string, f generateFlags) error {
	cfg, cfgDir, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	a.display.Welcome()

	repo, err := git.Open(a.repoPath)
	if err != nil {
		return err
	}
	reviewers := a.loadReviewers(ctx, f.reviewers, repo.Root, cfgDir)

	manager, err := a.newManager(cfg)
	if err != nil {
		return err
	}

	if f.provider != "" {
		if knownProvider(cfg, f.provider) {
			a.display.Info("Using provider: " + f.provider)
		} else {
			a.display.Warn("Unknown provider: " + f.provider)
		}
	}

	sel, err := a.selection(args, f, manager)
	if err != nil {
		return err
	}
	opts := pr.Options{
		Type:        sel.Type,
		Title:       sel.Title,
		Ticket:      sel.Ticket,
		Explanation: sel.Explanation,
		Provider:    sel.Provider,
	}
	if sel.Provider == "" {
		sel.Provider = manager.CurrentProvider()
	}
	a.display.Options(sel)
	if f.saveDiff {
		opts.SaveDiffPath = config.DiffPath(repo.Root)
	}

	result, err := pr.NewGenerator(manager, git.NewDiffer(repo)).
		WithProgress(a.display.Progress).
		Generate(ctx, opts)
	if err != nil {
		return err
	}

	out := config.OutputPath(repo.Root)
	if err := pr.Save(out, result.FullDescription); err != nil {
		return err
	}
	a.display.Result(result.FullDescription, out, sel.Provider)

	action, err := a.action(f.action)
	if err != nil {
		return err
	}
	runner := a.newRunner(a.display, a.openPR(cfg, repo, result, reviewers))
	return runner.Run(ctx, action, out)
}

// knownProvider reports whether name matches a provider genpr knows about,
// configured or not.
func knownProvider(cfg *config.Config, name string) bool {
	for _, p := range ai.Providers(cfg) {
		if strings.EqualFold(p.Name(), name) {
			return true
		}
	}
	return false
}

func (a *app) loadReviewers(ctx context.Context, flagPath, repoRoot, cfgDir string) pr.ReviewerSet {
	path := flagPath
	if path == "" {
		path = config.ReviewersPath(repoRoot, cfgDir)
	}
	reviewers, err := pr.LoadReviewers(path)
	if err != nil {
		clog.FromContext(ctx).With("path", path).Warnf("Ignoring reviewers: %v", err)
		a.display.Warn("Could not load reviewers: " + err.Error())
		return pr.ReviewerSet{}
	}
	return reviewers
}

// selection builds the user's choices from the arguments, or asks for them
// when none were given.
func (a *app) selection(args []string, f generateFlags, manager *ai.Manager) (ui.Selection, error) {
	sel := ui.Selection{Provider: f.provider}
	if len(args) > 0 {
		sel.Type = strings.ToLower(args[0])
		if !pr.IsType(sel.Type) {
			return sel, fmt.Errorf("invalid PR type %q, expected one of: %s", args[0], typeNames())
		}
		if len(args) > 1 {
			info := pr.ParseTitle(args[1])
			sel.Title, sel.Ticket = info.Title, info.Ticket
		}
		if f.ticket != "" {
			sel.Ticket = f.ticket
		}
		sel.Explanation = f.explain
		return sel, nil
	}
	return a.ask(sel, f, manager)
}

func (a *app) ask(sel ui.Selection, f generateFlags, manager *ai.Manager) (ui.Selection, error) {
	items := make([]ui.SelectItem[string], 0, len(pr.Types))
	for _, t := range pr.Types {
		items = append(items, ui.SelectItem[string]{Title: t.Label, Value: t.Value})
	}
	prType, err := a.prompt.Select("📝 Select PR type:", items, pr.Types[0].Value)
	if err != nil {
		return sel, err
	}
	sel.Type = prType

	title, err := a.prompt.Input("✏️  Title (optional, leave empty to auto-generate):", ui.InputOptions{
		Placeholder: "ABC-123: Add login page",
	})
	if err != nil {
		return sel, err
	}
	info := pr.ParseTitle(title)
	sel.Title, sel.Ticket = info.Title, info.Ticket

	if f.ticket != "" {
		sel.Ticket = f.ticket
	} else if sel.Ticket == "" {
		if sel.Ticket, err = a.prompt.Input("🎫 Ticket (optional):", ui.InputOptions{}); err != nil {
			return sel, err
		}
		sel.Ticket = strings.TrimSpace(sel.Ticket)
	}

	if f.explain != "" {
		sel.Explanation = f.explain
	} else {
		if sel.Explanation, err = a.prompt.Input("💬 Short explanation (optional):", ui.InputOptions{}); err != nil {
			return sel, err
		}
		sel.Explanation = strings.TrimSpace(sel.Explanation)
	}

	available := manager.AvailableProviders()
	if f.provider == "" && len(available) > 1 {
		items := []ui.SelectItem[string]{{Title: "🔀 Auto-select", Description: "fall back through every provider", Value: ""}}
		for _, p := range available {
			items = append(items, ui.SelectItem[string]{Title: p.Name(), Value: p.Name()})
		}
		if sel.Provider, err = a.prompt.Select("🤖 AI provider:", items, ""); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

func typeNames() string {
	names := make([]string, 0, len(pr.Types))
	for _, t := range pr.Types {
		names = append(names, t.Value)
	}
	return strings.Join(names, ", ")
}

// action returns the flag's action, or asks for one.
func (a *app) action(name string) (ui.Action, error) {
	if name != "" {
		return ui.ParseAction(name)
	}
	items := make([]ui.SelectItem[string], 0, len(ui.Actions))
	for _, it := range ui.Actions {
		items = append(items, ui.SelectItem[string]{Title: it.Title, Description: it.Description, Value: string(it.Value)})
	}
	choice, err := a.prompt.Select("🚀 What do you want to do with the description?", items, string(ui.ActionClipboard))
	if err != nil {
		return "", err
	}
	return ui.Action(choice), nil
}

// openPR returns the function that opens the pull request on a platform.
func (a *app) openPR(cfg *config.Config, repo *git.Repository, result *pr.Result, reviewers pr.ReviewerSet) ui.PROpener {
	return func(ctx context.Context, platform hosting.Platform) error {
		opts := append([]hosting.Option(nil), a.publisherOptions...)
		if a.openURL != nil {
			opts = append(opts, hosting.WithOpener(a.openURL))
		}
		creds := hosting.Credentials{
			BitbucketEmail: cfg.BitbucketEmail,
			BitbucketToken: cfg.BitbucketToken,
			GitHubToken:    cfg.GitHubToken,
		}
		var publisher hosting.Publisher
		var err error
		if platform == hosting.Unknown {
			publisher, err = hosting.DetectPublisher(repo.RemoteURL, creds, opts...)
			if err != nil {
				return fmt.Errorf("failed to create PR: %w", err)
			}
		} else {
			publisher, err = hosting.NewPublisher(platform, repo.RemoteURL, creds, opts...)
			if err != nil {
				return fmt.Errorf("failed to create %s PR: %w", platformName(platform), err)
			}
		}
		platform = publisher.Platform()

		name := platformName(platform)
		if !credentialsFor(cfg, platform) {
			a.display.Warn(fmt.Sprintf("No %s API credentials found. Opening in browser instead.", name))
			a.display.Info(credentialsHint(platform))
		}

		res, err := publisher.Publish(ctx, hosting.PullRequest{
			Title:             result.Title,
			Description:       result.Body,
			SourceBranch:      repo.CurrentBranch,
			DestinationBranch: repo.DefaultBranch,
			Reviewers:         reviewers.Usernames(string(platform)),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s PR: %w", name, err)
		}
		if res.Created {
			a.display.Success("Created PR successfully!")
		} else {
			a.display.Success(fmt.Sprintf("Opened %s PR page.", name))
		}
		a.display.Link(res.URL)
		return nil
	}
}

func platformName(p hosting.Platform) string {
	switch p {
	case hosting.Bitbucket:
		return "Bitbucket"
	case hosting.GitHub:
		return "GitHub"
	case hosting.GitLab:
		return "GitLab"
	default:
		return string(p)
	}
}

func credentialsFor(cfg *config.Config, p hosting.Platform) bool {
	switch p {
	case hosting.Bitbucket:
		return cfg.BitbucketConfigured()
	case hosting.GitHub:
		return cfg.GitHubConfigured()
	default:
		return false
	}
}

func credentialsHint(p hosting.Platform) string {
	if p == hosting.Bitbucket {
		return fmt.Sprintf("Set %s and %s (genpr config --edit) to create PRs automatically.", config.EnvBitbucketEmail, config.EnvBitbucketToken)
	}
	return fmt.Sprintf("Set %s (genpr config --edit) to create PRs automatically.", config.EnvGitHubToken)
}
