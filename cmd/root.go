package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chainguard-dev/clog"
	"github.com/sebrandon1/genpr/internal/ui"
	"github.com/spf13/cobra"
)

// Set by the linker via -ldflags "-X github.com/sebrandon1/genpr/cmd.version=..."
var version = "dev"

type generateFlags struct {
	provider  string
	ticket    string
	explain   string
	action    string
	reviewers string
	saveDiff  bool
}

var (
	flags   generateFlags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "genpr [type] [title]",
	Short: "Generate pull request descriptions from your git diff using AI",
	Long: `genpr reads the pending changes of the current git repository and asks an AI
provider (OpenAI, Gemini or a local Ollama model) for a pull request title and
description. The result is saved to pr-description.md and can be copied, opened
in an editor, or turned into a pull request on Bitbucket or GitHub.

Without arguments genpr asks for the PR type, title, ticket and explanation.`,
	Example: `  genpr
  genpr feat "Add login page"
  genpr fix "ABC-123: Handle nil user" --provider gemini --action clipboard`,
	Args:             cobra.MaximumNArgs(2),
	Version:          version,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).generate(cmd.Context(), args, flags)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "genpr v%s\n", version)
	},
}

func init() {
	rootCmd.SetVersionTemplate("genpr v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	f := rootCmd.Flags()
	f.StringVarP(&flags.provider, "provider", "p", "", "use only this AI provider (openai, gemini, ollama)")
	f.StringVarP(&flags.ticket, "ticket", "t", "", "ticket id to put in the title")
	f.StringVarP(&flags.explain, "explain", "e", "", "short explanation passed to the AI")
	f.StringVarP(&flags.action, "action", "a", "", "what to do with the result: clipboard, editor, bitbucket, github, pr, both, nothing")
	f.StringVar(&flags.reviewers, "reviewers", "", "path to a reviewers.json file")
	f.BoolVar(&flags.saveDiff, "save-diff", false, "also save the diff to diff.txt")

	rootCmd.AddCommand(versionCmd, initCmd, configCmd)
}

// setupLogging installs a clog logger on the command's context. Logs go to
// stderr so they never mix with the generated description.
func setupLogging(cmd *cobra.Command, _ []string) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := clog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(clog.WithLogger(ctx, logger))
}

// Execute runs the root command. Errors are printed before being returned.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, ui.ErrCancelled) {
		fmt.Fprintln(rootCmd.OutOrStdout(), "🤖 See you next time....")
		return nil
	}
	if err != nil {
		ui.NewDisplay(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).Error(err)
	}
	return err
}
