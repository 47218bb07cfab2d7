package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 2*time.Minute, cfg.ProviderTimeout)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.False(t, cfg.BitbucketConfigured())
	assert.False(t, cfg.GitHubConfigured())
}

func TestLoadFromValues(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		EnvOpenAIAPIKey:    "sk-test",
		EnvGeminiModel:     "gemini-1.5-pro",
		EnvDefaultProvider: "gemini",
		EnvProviderTimeout: "15s",
		EnvBitbucketEmail:  "me@example.com",
		EnvBitbucketToken:  "tok",
		EnvGitHubToken:     "ghp",
	}))
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, "gemini", cfg.DefaultProvider)
	assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)
	assert.True(t, cfg.BitbucketConfigured())
	assert.True(t, cfg.GitHubConfigured())
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENAI_API_KEY=from-file\nGEMINI_API_KEY=file-gemini\n"), 0600))

	t.Setenv(EnvOpenAIAPIKey, "from-env")
	t.Setenv(EnvGeminiAPIKey, "")
	require.NoError(t, os.Unsetenv(EnvGeminiAPIKey))

	cfg, err := Load(context.Background(), envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OpenAIAPIKey)
	assert.Equal(t, "file-gemini", cfg.GeminiAPIKey)
}

func TestReadEnvFileMissing(t *testing.T) {
	values, err := ReadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestWriteAndRemoveEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".env")

	err := WriteEnvFile(path, map[string]string{
		EnvOpenAIAPIKey: "sk-1",
		EnvGeminiAPIKey: "",
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	values, err := ReadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{EnvOpenAIAPIKey: "sk-1"}, values)

	removed, err := RemoveEnvFile(path)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = RemoveEnvFile(path)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWriteEnvFileTightensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OLD=1\n"), 0644))

	require.NoError(t, WriteEnvFile(path, map[string]string{EnvGitHubToken: "ghp"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	values, err := ReadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{EnvGitHubToken: "ghp"}, values)
}

func TestDirHonorsHome(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/genpr-home")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/genpr-home", dir)

	envPath, err := EnvPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/genpr-home", ".env"), envPath)
}

func TestReviewersPath(t *testing.T) {
	repo := t.TempDir()
	cfgDir := t.TempDir()

	assert.Empty(t, ReviewersPath(repo, cfgDir))

	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, ReviewersFileName), []byte("{}"), 0600))
	assert.Equal(t, filepath.Join(cfgDir, ReviewersFileName), ReviewersPath(repo, cfgDir))

	require.NoError(t, os.WriteFile(filepath.Join(repo, ReviewersFileName), []byte("{}"), 0600))
	assert.Equal(t, filepath.Join(repo, ReviewersFileName), ReviewersPath(repo, cfgDir))
}
