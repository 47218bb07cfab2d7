// Package ai wraps the text-generation backends used to draft pull requests
// and the manager that picks between them.
//
// Providers are constructed once per invocation from static configuration and
// never mutated. The Manager holds the subset that is available and walks it
// in a fixed order: OpenAI, Gemini, Ollama. A configured default provider is
// tried ahead of that order.
package ai

import "context"

// Response is the text produced by a provider.
type Response struct {
	Text string
}

// Provider is a single text-generation backend.
type Provider interface {
	// Name returns the display name of the provider, e.g. "OpenAI".
	Name() string
	// Available reports whether the provider has the credential it needs.
	// It never performs network calls.
	Available() bool
	// GenerateContent sends prompt to the backend and returns its trimmed text.
	GenerateContent(ctx context.Context, prompt string) (Response, error)
}
