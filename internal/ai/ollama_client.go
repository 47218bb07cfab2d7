package ai

import (
	"context"
	"net/http"
	"net/url"

	ollama "github.com/ollama/ollama/api"
)

// OllamaClient defines the interface for interacting with Ollama.
// This allows us to mock the client for testing purposes.
type OllamaClient interface {
	Chat(ctx context.Context, req *ollama.ChatRequest, fn ollama.ChatResponseFunc) error
}

// RealOllamaClient is a wrapper around the actual Ollama client that implements OllamaClient.
type RealOllamaClient struct {
	client *ollama.Client
}

// NewRealOllamaClient creates a RealOllamaClient. An empty host falls back to
// OLLAMA_HOST, as resolved by the Ollama library.
func NewRealOllamaClient(host string) (*RealOllamaClient, error) {
	if host == "" {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, err
		}
		return &RealOllamaClient{client: client}, nil
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, err
	}
	return &RealOllamaClient{client: ollama.NewClient(base, http.DefaultClient)}, nil
}

// Chat implements OllamaClient.Chat
func (r *RealOllamaClient) Chat(ctx context.Context, req *ollama.ChatRequest, fn ollama.ChatResponseFunc) error {
	return r.client.Chat(ctx, req, fn)
}
