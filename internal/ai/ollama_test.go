package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProviderGenerateContent(t *testing.T) {
	client := NewMockOllamaClient()
	client.MockResponses["bug"] = " Fixes the bug. "
	p := NewOllamaProviderFromClient(OllamaConfig{Model: "llama3"}, client)

	resp, err := p.GenerateContent(context.Background(), "this diff fixes a bug")
	require.NoError(t, err)
	assert.Equal(t, "Fixes the bug.", resp.Text)
	require.NotNil(t, client.LastRequest)
	assert.Equal(t, "llama3", client.LastRequest.Model)
	assert.False(t, *client.LastRequest.Stream)
}

func TestOllamaProviderDefaultResponse(t *testing.T) {
	client := NewMockOllamaClient()
	p := NewOllamaProviderFromClient(OllamaConfig{Model: "llama3"}, client)

	resp, err := p.GenerateContent(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "This is a mock answer for testing purposes.", resp.Text)
}

func TestOllamaProviderNotConfigured(t *testing.T) {
	client := NewMockOllamaClient()
	p := NewOllamaProviderFromClient(OllamaConfig{}, client)

	assert.False(t, p.Available())
	_, err := p.GenerateContent(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, client.LastRequest)
}

func TestOllamaProviderError(t *testing.T) {
	client := NewMockOllamaClient()
	client.Err = errors.New("connection refused")
	p := NewOllamaProviderFromClient(OllamaConfig{Model: "llama3"}, client)

	_, err := p.GenerateContent(context.Background(), "p")
	assert.Equal(t, "Ollama API error: connection refused", err.Error())
}

func ollamaServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req["model"])
		assert.Equal(t, false, req["stream"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body + "\n"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOllamaProviderHTTP(t *testing.T) {
	srv := ollamaServer(t, http.StatusOK, `{"model":"llama3","message":{"role":"assistant","content":" Adds login. "},"done":true}`)
	p := NewOllamaProvider(OllamaConfig{Host: srv.URL, Model: "llama3"})

	resp, err := p.GenerateContent(context.Background(), "describe")
	require.NoError(t, err)
	assert.Equal(t, "Adds login.", resp.Text)
}

func TestOllamaProviderHostFromEnvironment(t *testing.T) {
	srv := ollamaServer(t, http.StatusOK, `{"model":"llama3","message":{"role":"assistant","content":"ok"},"done":true}`)
	t.Setenv("OLLAMA_HOST", srv.URL)
	p := NewOllamaProvider(OllamaConfig{Model: "llama3"})

	resp, err := p.GenerateContent(context.Background(), "describe")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestOllamaProviderHTTPServerError(t *testing.T) {
	srv := ollamaServer(t, http.StatusInternalServerError, `{"error":"model exploded"}`)
	p := NewOllamaProvider(OllamaConfig{Host: srv.URL, Model: "llama3"})

	_, err := p.GenerateContent(context.Background(), "describe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ollama API error: ")
	assert.Contains(t, err.Error(), "model exploded")
}

func TestOllamaProviderBadHost(t *testing.T) {
	p := NewOllamaProvider(OllamaConfig{Host: "://nowhere", Model: "llama3"})

	_, err := p.GenerateContent(context.Background(), "describe")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, OllamaProviderName, perr.Provider)
}
