package ai

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIProviderName = "OpenAI"
	DefaultOpenAIModel = "gpt-4o-mini"
	openAITemperature  = 0.3
)

// ChatCompletionClient is the part of the OpenAI SDK the provider uses.
// It lets tests swap the SDK for a mock.
type ChatCompletionClient interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAIConfig holds the settings of the OpenAI provider.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIProvider implements Provider using the OpenAI chat completions API.
type OpenAIProvider struct {
	cfg    OpenAIConfig
	client ChatCompletionClient
}

// NewOpenAIProvider creates an OpenAIProvider. The SDK client is built on
// the first call so an unconfigured provider never touches the network.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	return &OpenAIProvider{cfg: cfg}
}

// NewOpenAIProviderFromClient creates an OpenAIProvider around an existing client.
// Used for testing with MockChatCompletionClient.
func NewOpenAIProviderFromClient(cfg OpenAIConfig, client ChatCompletionClient) *OpenAIProvider {
	p := NewOpenAIProvider(cfg)
	p.client = client
	return p
}

// Name implements Provider.Name.
func (o *OpenAIProvider) Name() string {
	return OpenAIProviderName
}

// Available implements Provider.Available.
func (o *OpenAIProvider) Available() bool {
	return o.cfg.APIKey != ""
}

// GenerateContent implements Provider.GenerateContent. An empty answer is an
// error for OpenAI: the API cannot tell an empty message from a missing one.
func (o *OpenAIProvider) GenerateContent(ctx context.Context, prompt string) (Response, error) {
	if !o.Available() {
		return Response{}, notConfigured("OpenAI API key")
	}

	completion, err := o.completions().New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(openAITemperature),
	})
	if err != nil {
		return Response{}, &ProviderError{Provider: OpenAIProviderName, Err: err}
	}

	if completion == nil || len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return Response{}, &ProviderError{Provider: OpenAIProviderName, Err: noResponse(OpenAIProviderName)}
	}

	return Response{Text: strings.TrimSpace(completion.Choices[0].Message.Content)}, nil
}

func (o *OpenAIProvider) completions() ChatCompletionClient {
	if o.client != nil {
		return o.client
	}
	opts := []option.RequestOption{
		option.WithAPIKey(o.cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if o.cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.cfg.BaseURL))
	}
	client := openai.NewClient(opts...)
	o.client = &client.Chat.Completions
	return o.client
}
