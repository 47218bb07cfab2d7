// Package config loads genpr settings from the environment and the user's
// .env file. Real environment variables take precedence over the file.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Environment variable names.
const (
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvOpenAIModel     = "OPENAI_MODEL"
	EnvOpenAIBaseURL   = "OPENAI_BASE_URL"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvGeminiModel     = "GEMINI_MODEL"
	EnvOllamaHost      = "OLLAMA_HOST"
	EnvOllamaModel     = "OLLAMA_MODEL"
	EnvDefaultProvider = "DEFAULT_PROVIDER"
	EnvProviderTimeout = "GENPR_PROVIDER_TIMEOUT"
	EnvBitbucketEmail  = "BITBUCKET_EMAIL"
	EnvBitbucketToken  = "BITBUCKET_TOKEN"
	EnvGitHubToken     = "GITHUB_TOKEN"
	EnvHome            = "GENPR_HOME"
)

// Config is the full runtime configuration.
type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL, default=gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL, default=gemini-2.0-flash"`

	OllamaHost  string `env:"OLLAMA_HOST"`
	OllamaModel string `env:"OLLAMA_MODEL"`

	// DefaultProvider names the provider tried first, e.g. "gemini".
	DefaultProvider string        `env:"DEFAULT_PROVIDER"`
	ProviderTimeout time.Duration `env:"GENPR_PROVIDER_TIMEOUT, default=2m"`

	BitbucketEmail string `env:"BITBUCKET_EMAIL"`
	BitbucketToken string `env:"BITBUCKET_TOKEN"`
	GitHubToken    string `env:"GITHUB_TOKEN"`
}

// Load reads the configuration from the process environment, then from the
// .env file at envFile. A missing file is not an error.
func Load(ctx context.Context, envFile string) (*Config, error) {
	values, err := ReadEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	return LoadFrom(ctx, envconfig.MultiLookuper(
		envconfig.OsLookuper(),
		envconfig.MapLookuper(values),
	))
}

// LoadFrom processes the configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	return &cfg, nil
}

// BitbucketConfigured reports whether both Bitbucket credentials are set.
func (c *Config) BitbucketConfigured() bool {
	return c.BitbucketEmail != "" && c.BitbucketToken != ""
}

// GitHubConfigured reports whether a GitHub token is set.
func (c *Config) GitHubConfigured() bool {
	return c.GitHubToken != ""
}

// ReadEnvFile parses a .env file. A missing file yields an empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}
