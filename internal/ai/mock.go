package ai

import (
	"context"
	"strings"

	ollama "github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/genai"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	// ProviderName is returned by Name().
	ProviderName string
	// Key controls Available(); an empty key means unavailable.
	Key string
	// Text is returned on success, trimmed like a real provider would.
	Text string
	// Err, when set, is returned instead of Text.
	Err error
	// Block makes GenerateContent wait for the context to end.
	Block bool

	// Calls counts GenerateContent invocations.
	Calls int
	// Prompts records every prompt received.
	Prompts []string
}

// NewMockProvider creates an available MockProvider answering text.
func NewMockProvider(name, text string) *MockProvider {
	return &MockProvider{
		ProviderName: name,
		Key:          "mock-key",
		Text:         text,
	}
}

// Name implements Provider.Name for the mock.
func (m *MockProvider) Name() string {
	return m.ProviderName
}

// Available implements Provider.Available for the mock.
func (m *MockProvider) Available() bool {
	return m.Key != ""
}

// GenerateContent implements Provider.GenerateContent for the mock.
func (m *MockProvider) GenerateContent(ctx context.Context, prompt string) (Response, error) {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	if !m.Available() {
		return Response{}, notConfigured(m.ProviderName + " API key")
	}
	if m.Block {
		<-ctx.Done()
		return Response{}, &ProviderError{Provider: m.ProviderName, Err: ctx.Err()}
	}
	if m.Err != nil {
		return Response{}, &ProviderError{Provider: m.ProviderName, Err: m.Err}
	}
	return Response{Text: strings.TrimSpace(m.Text)}, nil
}

// MockOllamaClient is a mock implementation of OllamaClient for testing.
type MockOllamaClient struct {
	// Map of prompt snippets to mock answers
	MockResponses map[string]string
	// Default response if no match is found
	DefaultResponse string
	// Err is returned by Chat when set
	Err error
	// LastRequest is the most recent chat request
	LastRequest *ollama.ChatRequest
}

// NewMockOllamaClient creates a new MockOllamaClient with default responses.
func NewMockOllamaClient() *MockOllamaClient {
	return &MockOllamaClient{
		MockResponses:   make(map[string]string),
		DefaultResponse: "This is a mock answer for testing purposes.",
	}
}

// Chat implements OllamaClient.Chat for the mock.
func (m *MockOllamaClient) Chat(ctx context.Context, req *ollama.ChatRequest, fn ollama.ChatResponseFunc) error {
	m.LastRequest = req
	if m.Err != nil {
		return m.Err
	}

	var content string
	if len(req.Messages) > 0 {
		content = req.Messages[0].Content
	}

	answer := m.DefaultResponse
	for key, response := range m.MockResponses {
		if strings.Contains(content, key) {
			answer = response
			break
		}
	}

	return fn(ollama.ChatResponse{
		Message: ollama.Message{
			Content: answer,
		},
	})
}

// MockChatCompletionClient is a mock implementation of ChatCompletionClient for testing.
type MockChatCompletionClient struct {
	Completion *openai.ChatCompletion
	Err        error
	Calls      int
	LastParams openai.ChatCompletionNewParams
}

// NewMockChatCompletionClient returns a client answering content in a single choice.
func NewMockChatCompletionClient(content string) *MockChatCompletionClient {
	return &MockChatCompletionClient{
		Completion: &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: content,
					},
					FinishReason: "stop",
				},
			},
		},
	}
}

// New implements ChatCompletionClient.New for the mock.
func (m *MockChatCompletionClient) New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	m.Calls++
	m.LastParams = body
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Completion, nil
}

// MockGeminiModelsClient is a mock implementation of GeminiModelsClient for testing.
type MockGeminiModelsClient struct {
	Response  *genai.GenerateContentResponse
	Err       error
	Calls     int
	LastModel string
	LastText  string
}

// NewMockGeminiModelsClient returns a client answering text in a single candidate.
func NewMockGeminiModelsClient(text string) *MockGeminiModelsClient {
	return &MockGeminiModelsClient{
		Response: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Role:  "model",
						Parts: []*genai.Part{genai.NewPartFromText(text)},
					},
				},
			},
		},
	}
}

// GenerateContent implements GeminiModelsClient.GenerateContent for the mock.
func (m *MockGeminiModelsClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.Calls++
	m.LastModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		m.LastText = contents[0].Parts[0].Text
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}
