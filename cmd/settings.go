package cmd

import (
	"strings"

	"github.com/sebrandon1/genpr/internal/config"
	"github.com/sebrandon1/genpr/internal/ui"
)

const customModel = "custom"

var openAIModels = []ui.SelectItem[string]{
	{Title: "GPT-4o Mini (Fast & Cheap)", Value: "gpt-4o-mini"},
	{Title: "GPT-4o (Best Quality)", Value: "gpt-4o"},
	{Title: "GPT-4 Turbo (Balanced)", Value: "gpt-4-turbo"},
	{Title: "Custom Model", Value: customModel},
}

var geminiModels = []ui.SelectItem[string]{
	{Title: "Gemini 2.0 Flash (Fast)", Value: "gemini-2.0-flash"},
	{Title: "Gemini 2.0 Pro (Best Quality)", Value: "gemini-2.0-pro"},
	{Title: "Gemini 1.5 Pro (Balanced)", Value: "gemini-1.5-pro"},
	{Title: "Custom Model", Value: customModel},
}

var defaultProviders = []ui.SelectItem[string]{
	{Title: "Auto-select (Recommended)", Value: ""},
	{Title: "OpenAI (GPT)", Value: "openai"},
	{Title: "Gemini", Value: "gemini"},
	{Title: "Ollama", Value: "ollama"},
}

// secret is a credential that can be asked for.
type secret struct {
	key    string
	prompt string
	masked bool
}

var providerSecrets = []secret{
	{key: config.EnvOpenAIAPIKey, prompt: "🔑 OpenAI API key (Enter to skip):", masked: true},
	{key: config.EnvGeminiAPIKey, prompt: "🔑 Gemini API key (Enter to skip):", masked: true},
	{key: config.EnvOllamaModel, prompt: "🦙 Ollama model, e.g. llama3.2 (Enter to skip):"},
}

var hostingSecrets = []secret{
	{key: config.EnvBitbucketEmail, prompt: "📧 Bitbucket email (Enter to skip):"},
	{key: config.EnvBitbucketToken, prompt: "🔑 Bitbucket app password (Enter to skip):", masked: true},
	{key: config.EnvGitHubToken, prompt: "🔑 GitHub personal access token (Enter to skip):", masked: true},
}

// askSecrets prompts for each secret. An empty answer keeps the current value.
func askSecrets(p prompter, values map[string]string, secrets []secret) error {
	for _, s := range secrets {
		opts := ui.InputOptions{}
		if s.masked {
			opts.Mask = true
		} else {
			opts.Initial = values[s.key]
		}
		v, err := p.Input(s.prompt, opts)
		if err != nil {
			return err
		}
		if v = strings.TrimSpace(v); v != "" {
			values[s.key] = v
		}
	}
	return nil
}

// askModels prompts for the model of each provider and the default provider.
func askModels(p prompter, values map[string]string) error {
	openaiModel, err := askModel(p, "🤖 Select OpenAI Model:", openAIModels, values[config.EnvOpenAIModel], "gpt-4o-mini")
	if err != nil {
		return err
	}
	geminiModel, err := askModel(p, "🤖 Select Gemini Model:", geminiModels, values[config.EnvGeminiModel], "gemini-2.0-flash")
	if err != nil {
		return err
	}
	provider, err := p.Select("🎯 Default AI Provider:", defaultProviders, values[config.EnvDefaultProvider])
	if err != nil {
		return err
	}
	values[config.EnvOpenAIModel] = openaiModel
	values[config.EnvGeminiModel] = geminiModel
	values[config.EnvDefaultProvider] = provider
	return nil
}

func askModel(p prompter, prompt string, items []ui.SelectItem[string], current, fallback string) (string, error) {
	if current == "" {
		current = fallback
	}
	initial := customModel
	for _, it := range items {
		if it.Value == current {
			initial = current
		}
	}
	model, err := p.Select(prompt, items, initial)
	if err != nil || model != customModel {
		return model, err
	}
	model, err = p.Input("🔧 Enter custom model name:", ui.InputOptions{Initial: current, Required: true})
	return strings.TrimSpace(model), err
}
