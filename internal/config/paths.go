package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// File names used by genpr.
const (
	EnvFileName       = ".env"
	OutputFileName    = "pr-description.md"
	DiffFileName      = "diff.txt"
	ReviewersFileName = "reviewers.json"
)

// Dir returns the genpr configuration directory: $GENPR_HOME, or
// <user config dir>/genpr.
func Dir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "genpr"), nil
}

// EnvPath returns the path of the user's .env file.
func EnvPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, EnvFileName), nil
}

// OutputPath returns where the generated description is written.
func OutputPath(repoRoot string) string {
	return filepath.Join(repoRoot, OutputFileName)
}

// DiffPath returns where the diff is saved when requested.
func DiffPath(repoRoot string) string {
	return filepath.Join(repoRoot, DiffFileName)
}

// ReviewersPath returns the first reviewers.json found in the repository
// root or the config dir, or "" when there is none.
func ReviewersPath(repoRoot, configDir string) string {
	for _, dir := range []string{repoRoot, configDir} {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, ReviewersFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// WriteEnvFile stores values in a .env file readable only by the user.
// Empty values are dropped.
func WriteEnvFile(path string, values map[string]string) error {
	kept := make(map[string]string, len(values))
	for k, v := range values {
		if v != "" {
			kept[k] = v
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	content, err := godotenv.Marshal(kept)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// An existing file keeps its mode on open.
	if err := f.Chmod(0600); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if _, err := f.WriteString(content + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// RemoveEnvFile deletes the .env file. It reports whether a file existed.
func RemoveEnvFile(path string) (bool, error) {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return true, nil
}
