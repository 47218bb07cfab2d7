package ai

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

const (
	GeminiProviderName = "Gemini"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// GeminiModelsClient is the part of the genai SDK the provider uses.
type GeminiModelsClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig holds the settings of the Gemini provider.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiProvider implements Provider using the Gemini API.
type GeminiProvider struct {
	cfg    GeminiConfig
	client GeminiModelsClient
}

// NewGeminiProvider creates a GeminiProvider. The SDK client is built lazily.
func NewGeminiProvider(cfg GeminiConfig) *GeminiProvider {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	return &GeminiProvider{cfg: cfg}
}

// NewGeminiProviderFromClient creates a GeminiProvider around an existing client.
func NewGeminiProviderFromClient(cfg GeminiConfig, client GeminiModelsClient) *GeminiProvider {
	p := NewGeminiProvider(cfg)
	p.client = client
	return p
}

// Name implements Provider.Name.
func (g *GeminiProvider) Name() string {
	return GeminiProviderName
}

// Available implements Provider.Available.
func (g *GeminiProvider) Available() bool {
	return g.cfg.APIKey != ""
}

// GenerateContent implements Provider.GenerateContent. Gemini can return an
// empty text, which is passed through as a valid answer.
func (g *GeminiProvider) GenerateContent(ctx context.Context, prompt string) (Response, error) {
	if !g.Available() {
		return Response{}, notConfigured("Gemini API key")
	}

	client, err := g.models(ctx)
	if err != nil {
		return Response{}, &ProviderError{Provider: GeminiProviderName, Err: err}
	}

	result, err := client.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return Response{}, &ProviderError{Provider: GeminiProviderName, Err: err}
	}
	if result == nil {
		return Response{}, nil
	}
	return Response{Text: strings.TrimSpace(result.Text())}, nil
}

func (g *GeminiProvider) models(ctx context.Context) (GeminiModelsClient, error) {
	if g.client != nil {
		return g.client, nil
	}
	cc := &genai.ClientConfig{
		APIKey:  g.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	g.client = client.Models
	return g.client, nil
}
