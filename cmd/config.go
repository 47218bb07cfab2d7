package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/sebrandon1/genpr/internal/config"
	"github.com/sebrandon1/genpr/internal/ui"
	"github.com/spf13/cobra"
)

type configFlags struct {
	view  bool
	edit  bool
	reset bool
}

var cfgFlags configFlags

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View, edit or reset the genpr configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).runConfig(cmd.Context(), cfgFlags)
	},
}

func init() {
	f := configCmd.Flags()
	f.BoolVar(&cfgFlags.view, "view", false, "show the current configuration")
	f.BoolVar(&cfgFlags.edit, "edit", false, "edit the configuration")
	f.BoolVar(&cfgFlags.reset, "reset", false, "delete the configuration file")
	configCmd.MarkFlagsMutuallyExclusive("view", "edit", "reset")
}

const (
	configView   = "view"
	configEdit   = "edit"
	configReset  = "reset"
	configCancel = "cancel"
)

var configActions = []ui.SelectItem[string]{
	{Title: "📋 View current configuration", Value: configView},
	{Title: "✏️  Edit configuration", Value: configEdit},
	{Title: "🔄 Reset configuration", Value: configReset},
	{Title: "❌ Cancel", Value: configCancel},
}

func (a *app) runConfig(ctx context.Context, f configFlags) error {
	path, err := config.EnvPath()
	if err != nil {
		return err
	}

	action := configView
	switch {
	case f.view:
	case f.edit:
		action = configEdit
	case f.reset:
		action = configReset
	default:
		if action, err = a.prompt.Select("What would you like to do?", configActions, configView); err != nil {
			return err
		}
	}

	switch action {
	case configView:
		return a.viewConfig(ctx, path)
	case configEdit:
		return a.editConfig(ctx, path)
	case configReset:
		return a.resetConfig(path)
	}
	return nil
}

func (a *app) viewConfig(ctx context.Context, path string) error {
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return err
	}
	d := a.display
	d.Plain("")
	d.Plain("🔧 Current Configuration")
	d.Plain("   File: " + path)
	d.Plain("")
	d.Plain("🤖 AI Providers:")
	d.Plain("   OpenAI API Key: " + status(cfg.OpenAIAPIKey != ""))
	d.Plain("   Gemini API Key: " + status(cfg.GeminiAPIKey != ""))
	d.Plain("   Ollama Model: " + orDefault(cfg.OllamaModel, "Not configured"))
	d.Plain("")
	d.Plain("🎯 Models:")
	d.Plain("   OpenAI Model: " + cfg.OpenAIModel)
	d.Plain("   Gemini Model: " + cfg.GeminiModel)
	d.Plain("   Default Provider: " + orDefault(cfg.DefaultProvider, "Auto-select"))
	d.Plain(fmt.Sprintf("   Provider Timeout: %s", cfg.ProviderTimeout))
	d.Plain("")
	d.Plain("🔗 Git Hosting:")
	d.Plain("   Bitbucket: " + status(cfg.BitbucketConfigured()))
	d.Plain("   GitHub: " + status(cfg.GitHubConfigured()))
	d.Plain("")
	return nil
}

func status(ok bool) string {
	if ok {
		return "✅ Configured"
	}
	return "❌ Not configured"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

const (
	sectionKeys    = "keys"
	sectionModels  = "models"
	sectionHosting = "hosting"
	sectionAll     = "all"
)

var configSections = []ui.SelectItem[string]{
	{Title: "🔑 AI provider keys", Value: sectionKeys},
	{Title: "🤖 AI models and default provider", Value: sectionModels},
	{Title: "🔗 Git hosting credentials", Value: sectionHosting},
	{Title: "📦 Everything", Value: sectionAll},
}

func (a *app) editConfig(ctx context.Context, path string) error {
	values, err := config.ReadEnvFile(path)
	if err != nil {
		return err
	}
	section, err := a.prompt.Select("What do you want to edit?", configSections, sectionAll)
	if err != nil {
		return err
	}
	if section == sectionKeys || section == sectionAll {
		if err := askSecrets(a.prompt, values, providerSecrets); err != nil {
			return err
		}
	}
	if section == sectionModels || section == sectionAll {
		if err := askModels(a.prompt, values); err != nil {
			return err
		}
	}
	if section == sectionHosting || section == sectionAll {
		if err := askSecrets(a.prompt, values, hostingSecrets); err != nil {
			return err
		}
	}

	if err := config.WriteEnvFile(path, values); err != nil {
		return err
	}
	a.display.Success("Configuration updated!")
	return a.viewConfig(ctx, path)
}

func (a *app) resetConfig(path string) error {
	ok, err := a.prompt.Confirm("⚠️  Are you sure you want to reset all configuration?", false)
	if errors.Is(err, ui.ErrCancelled) || (err == nil && !ok) {
		a.display.Info("Reset cancelled.")
		return nil
	}
	if err != nil {
		return err
	}
	removed, err := config.RemoveEnvFile(path)
	if err != nil {
		return err
	}
	if removed {
		a.display.Success("Configuration reset.")
	} else {
		a.display.Info("No configuration file found.")
	}
	return nil
}
