package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by a provider asked to generate without a credential.
	ErrNotConfigured = errors.New("not configured")

	// ErrNoProviders means no provider had a credential.
	ErrNoProviders = errors.New("No AI providers available. Please configure at least one API key.")

	// ErrAllProvidersFailed means every available provider was tried and failed.
	ErrAllProvidersFailed = errors.New("All available AI providers failed to generate content.")

	// ErrProviderNotFound is matched by ProviderNotFoundError.
	ErrProviderNotFound = errors.New("provider not found or not available")

	// ErrNoResponse is returned when a backend answers without any content.
	ErrNoResponse = errors.New("No response")
)

// ProviderError wraps a backend failure with the provider it came from.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Err.Error())
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderNotFoundError is returned by Manager.GenerateContentWithProvider
// when the requested name is not among the available providers.
type ProviderNotFoundError struct {
	Name string
}

func (e *ProviderNotFoundError) Error() string {
	return fmt.Sprintf("Provider '%s' not found or not available", e.Name)
}

func (e *ProviderNotFoundError) Is(target error) bool {
	return target == ErrProviderNotFound
}

// notConfigured builds the error a provider returns when its key is missing.
func notConfigured(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotConfigured)
}

// noResponse builds the error a provider returns for an empty answer.
func noResponse(provider string) error {
	return fmt.Errorf("%w from %s", ErrNoResponse, provider)
}
