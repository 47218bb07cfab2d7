package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/sebrandon1/genpr/internal/config"
	"github.com/sebrandon1/genpr/internal/git"
	"github.com/sebrandon1/genpr/internal/pr"
	"github.com/spf13/cobra"
)

const reviewersExampleName = config.ReviewersFileName + ".example"

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up API keys, a reviewers example and .gitignore entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).runInit(cmd.Context(), forceInit)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "ask for keys again even if a .env file exists")
}

func (a *app) runInit(ctx context.Context, force bool) error {
	d := a.display
	d.Plain("🧠 AI Pull Request Generator - Initialization")
	d.Plain("")

	if _, err := exec.LookPath("git"); err != nil {
		d.Warn("Git is not installed. Some features may not work.")
		d.Info("Visit: https://git-scm.com/")
	} else {
		d.Success("Git detected")
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := a.initEnv(filepath.Join(dir, config.EnvFileName), force); err != nil {
		return err
	}

	created, err := writeReviewersExample(filepath.Join(dir, reviewersExampleName))
	if err != nil {
		return err
	}
	if created {
		d.Success("Created " + filepath.Join(dir, reviewersExampleName))
	} else {
		d.Success(reviewersExampleName + " already exists")
	}

	repo, err := git.Open(a.repoPath)
	switch {
	case errors.Is(err, git.ErrNotRepository):
		d.Info("Not in a git repository, skipping .gitignore.")
	case err != nil:
		return err
	default:
		added, err := updateGitignore(filepath.Join(repo.Root, ".gitignore"))
		if err != nil {
			return err
		}
		clog.FromContext(ctx).Debugf("Added %v to .gitignore", added)
		if len(added) > 0 {
			d.Success("Added " + strings.Join(added, ", ") + " to .gitignore")
		} else {
			d.Success(".gitignore already up to date")
		}
	}

	d.Plain("")
	d.Success("Initialization complete! 🎉")
	d.Plain("Usage:")
	d.Plain("  genpr                    # Interactive mode")
	d.Plain("  genpr feat 'Add feature' # One-liner mode")
	return nil
}

func (a *app) initEnv(path string, force bool) error {
	d := a.display
	if _, err := os.Stat(path); err == nil && !force {
		d.Success(".env file already exists at " + path)
		return nil
	}

	values, err := config.ReadEnvFile(path)
	if err != nil {
		return err
	}

	d.Plain("")
	d.Plain("🔐 AI Provider Setup")
	d.Plain("You need at least one API key (or a local Ollama model) to use this tool.")
	d.Info("OpenAI: https://platform.openai.com/api-keys")
	d.Info("Gemini: https://aistudio.google.com/app/apikey")
	if err := askSecrets(a.prompt, values, providerSecrets); err != nil {
		return err
	}
	if values[config.EnvOpenAIAPIKey] == "" && values[config.EnvGeminiAPIKey] == "" && values[config.EnvOllamaModel] == "" {
		d.Warn("No API keys provided. Run genpr init again or genpr config --edit later.")
		return nil
	}
	if err := askModels(a.prompt, values); err != nil {
		return err
	}

	d.Plain("")
	d.Plain("🔗 Git Hosting Setup (Optional)")
	d.Info("Bitbucket app passwords: https://bitbucket.org/account/settings/app-passwords/")
	d.Info("GitHub tokens: https://github.com/settings/tokens")
	if err := askSecrets(a.prompt, values, hostingSecrets); err != nil {
		return err
	}

	if err := config.WriteEnvFile(path, values); err != nil {
		return err
	}
	d.Success("Configuration saved to " + path)
	return nil
}

var exampleReviewers = pr.ReviewerSet{
	"bitbucket": {{Name: "John Doe", Username: "johndoe"}, {Name: "Jane Smith", Username: "janesmith"}},
	"github":    {{Name: "John Doe", Username: "johndoe"}, {Name: "Jane Smith", Username: "janesmith"}},
	"gitlab":    {{Name: "John Doe", Username: "johndoe"}, {Name: "Jane Smith", Username: "janesmith"}},
	"default":   {{Name: "Default Reviewer", Username: "default"}},
}

// writeReviewersExample creates the example file unless it exists.
func writeReviewersExample(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := json.MarshalIndent(exampleReviewers, "", "  ")
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

var ignoredFiles = []string{config.EnvFileName, config.OutputFileName, config.DiffFileName}

// updateGitignore appends the files genpr writes to .gitignore and returns
// the entries it added.
func updateGitignore(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	var added []string
	for _, name := range ignoredFiles {
		if !slices.Contains(lines, name) && !slices.Contains(lines, "/"+name) {
			added = append(added, name)
		}
	}
	if len(added) == 0 {
		return nil, nil
	}

	var b strings.Builder
	b.Write(content)
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		b.WriteString("\n")
	}
	for _, name := range added {
		b.WriteString(name + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", path, err)
	}
	return added, nil
}
