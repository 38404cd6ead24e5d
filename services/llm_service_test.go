package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLLMService(baseURL string, webContext bool) *LLMService {
	return &LLMService{
		baseURL:    baseURL,
		apiKey:     "test-key",
		webContext: webContext,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestInvokeSendsSchemaAndAuth(t *testing.T) {
	var got invokeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoke-llm", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"packages": []}`))
	}))
	defer server.Close()

	s := testLLMService(server.URL, true)
	schema := map[string]interface{}{"type": "object"}
	raw, err := s.Invoke(context.Background(), "a prompt", schema, true)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"packages": []}`, string(raw))
	assert.Equal(t, "a prompt", got.Prompt)
	assert.Equal(t, "object", got.ResponseJSONSchema["type"])
	assert.True(t, got.AddContextFromInternet)
}

func TestInvokeWebContextDisabledWins(t *testing.T) {
	var got invokeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`"ok"`))
	}))
	defer server.Close()

	s := testLLMService(server.URL, false)
	_, err := s.Invoke(context.Background(), "a prompt", nil, true)

	assert.NoError(t, err)
	// Caller asked for web context but the provider has none.
	assert.False(t, got.AddContextFromInternet)
}

func TestInvokeNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	s := testLLMService(server.URL, true)
	_, err := s.Invoke(context.Background(), "a prompt", nil, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestInvokeTextPlainString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"שלום! איך אפשר לעזור?"`))
	}))
	defer server.Close()

	s := testLLMService(server.URL, true)
	text, err := s.InvokeText(context.Background(), "hi", false)

	assert.NoError(t, err)
	assert.Equal(t, "שלום! איך אפשר לעזור?", text)
}

func TestInvokeTextWrappedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": "wrapped answer"}`))
	}))
	defer server.Close()

	s := testLLMService(server.URL, true)
	text, err := s.InvokeText(context.Background(), "hi", false)

	assert.NoError(t, err)
	assert.Equal(t, "wrapped answer", text)
}
