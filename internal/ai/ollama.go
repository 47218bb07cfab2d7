package ai

import (
	"context"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

const OllamaProviderName = "Ollama"

// OllamaConfig holds the settings of the Ollama provider. A local server has
// no key, so the model name is what makes the provider available.
type OllamaConfig struct {
	Host  string
	Model string
}

// OllamaProvider implements Provider using a local Ollama server.
type OllamaProvider struct {
	cfg    OllamaConfig
	client OllamaClient
}

// NewOllamaProvider creates an OllamaProvider. The client is built lazily.
func NewOllamaProvider(cfg OllamaConfig) *OllamaProvider {
	return &OllamaProvider{cfg: cfg}
}

// NewOllamaProviderFromClient creates an OllamaProvider from an existing OllamaClient.
// Used for testing with MockOllamaClient.
func NewOllamaProviderFromClient(cfg OllamaConfig, client OllamaClient) *OllamaProvider {
	return &OllamaProvider{cfg: cfg, client: client}
}

// Name implements Provider.Name.
func (o *OllamaProvider) Name() string {
	return OllamaProviderName
}

// Available implements Provider.Available.
func (o *OllamaProvider) Available() bool {
	return o.cfg.Model != ""
}

// GenerateContent implements Provider.GenerateContent using the Ollama Chat API.
func (o *OllamaProvider) GenerateContent(ctx context.Context, prompt string) (Response, error) {
	if !o.Available() {
		return Response{}, notConfigured("Ollama model")
	}
	if o.client == nil {
		client, err := NewRealOllamaClient(o.cfg.Host)
		if err != nil {
			return Response{}, &ProviderError{Provider: OllamaProviderName, Err: err}
		}
		o.client = client
	}

	stream := false
	chatReq := &ollama.ChatRequest{
		Model: o.cfg.Model,
		Messages: []ollama.Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Stream: &stream,
	}

	var sb strings.Builder
	err := o.client.Chat(ctx, chatReq, func(resp ollama.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return Response{}, &ProviderError{Provider: OllamaProviderName, Err: err}
	}
	return Response{Text: strings.TrimSpace(sb.String())}, nil
}
