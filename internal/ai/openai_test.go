package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProviderGenerateContent(t *testing.T) {
	client := NewMockChatCompletionClient("\n  A tidy summary.  \n")
	p := NewOpenAIProviderFromClient(OpenAIConfig{APIKey: "sk-test"}, client)

	resp, err := p.GenerateContent(context.Background(), "describe this")
	require.NoError(t, err)
	assert.Equal(t, "A tidy summary.", resp.Text)
	assert.Equal(t, 1, client.Calls)
	assert.Equal(t, openai.ChatModel(DefaultOpenAIModel), client.LastParams.Model)
	assert.Equal(t, 0.3, client.LastParams.Temperature.Value)
	assert.Len(t, client.LastParams.Messages, 1)
}

func TestOpenAIProviderCustomModel(t *testing.T) {
	client := NewMockChatCompletionClient("ok")
	p := NewOpenAIProviderFromClient(OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o"}, client)

	_, err := p.GenerateContent(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, openai.ChatModel("gpt-4o"), client.LastParams.Model)
}

func TestOpenAIProviderNotConfigured(t *testing.T) {
	client := NewMockChatCompletionClient("never")
	p := NewOpenAIProviderFromClient(OpenAIConfig{}, client)

	assert.False(t, p.Available())
	_, err := p.GenerateContent(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "OpenAI API key not configured", err.Error())
	assert.Equal(t, 0, client.Calls)
}

func TestOpenAIProviderEmptyAnswerIsError(t *testing.T) {
	testCases := []struct {
		name       string
		completion *openai.ChatCompletion
	}{
		{"nil completion", nil},
		{"no choices", &openai.ChatCompletion{}},
		{"empty content", NewMockChatCompletionClient("").Completion},
	}
	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			client := &MockChatCompletionClient{Completion: c.completion}
			p := NewOpenAIProviderFromClient(OpenAIConfig{APIKey: "sk"}, client)

			_, err := p.GenerateContent(context.Background(), "p")
			assert.ErrorIs(t, err, ErrNoResponse)
			assert.Equal(t, "OpenAI API error: No response from OpenAI", err.Error())
		})
	}
}

func TestOpenAIProviderBackendError(t *testing.T) {
	client := &MockChatCompletionClient{Err: errors.New("401 unauthorized")}
	p := NewOpenAIProviderFromClient(OpenAIConfig{APIKey: "sk"}, client)

	_, err := p.GenerateContent(context.Background(), "p")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, OpenAIProviderName, perr.Provider)
	assert.Equal(t, "OpenAI API error: 401 unauthorized", err.Error())
}

// openAIServer serves chat completions with the given status and body and
// counts the requests it receives.
func openAIServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat/completions", func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])
		assert.Equal(t, 0.3, req["temperature"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestOpenAIProviderHTTP(t *testing.T) {
	srv, calls := openAIServer(t, http.StatusOK, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
		"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"  Adds login.\n"}}]}`)
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL})

	resp, err := p.GenerateContent(context.Background(), "describe")
	require.NoError(t, err)
	assert.Equal(t, "Adds login.", resp.Text)
	assert.Equal(t, 1, *calls)
}

func TestOpenAIProviderHTTPServerError(t *testing.T) {
	srv, calls := openAIServer(t, http.StatusInternalServerError, `{"error":{"message":"upstream exploded","type":"server_error"}}`)
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := p.GenerateContent(context.Background(), "describe")
	require.Error(t, err)
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, OpenAIProviderName, perr.Provider)
	assert.Contains(t, err.Error(), "OpenAI API error: ")
	assert.Equal(t, 1, *calls, "retries are disabled")
}

func TestOpenAIProviderHTTPNoChoices(t *testing.T) {
	srv, _ := openAIServer(t, http.StatusOK, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`)
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := p.GenerateContent(context.Background(), "describe")
	assert.ErrorIs(t, err, ErrNoResponse)
	assert.Equal(t, "OpenAI API error: No response from OpenAI", err.Error())
}
