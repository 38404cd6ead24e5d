package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shaiiram/website1000-2000/config"
)

// LLMService wraps the external model provider behind a single invoke
// call: prompt in, either free text or schema-shaped JSON out. The
// provider optionally grounds the answer with live web context.
type LLMService struct {
	baseURL    string
	apiKey     string
	webContext bool
	httpClient *http.Client
}

func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		baseURL:    cfg.LLMBaseURL,
		apiKey:     cfg.LLMAPIKey,
		webContext: cfg.LLMWebContext != "off",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SupportsWebContext reports whether the configured provider does its own
// internet grounding. When it does not, callers inline scraped context
// into the prompt instead (see WebContextService).
func (s *LLMService) SupportsWebContext() bool {
	return s.webContext
}

type invokeRequest struct {
	Prompt                 string                 `json:"prompt"`
	ResponseJSONSchema     map[string]interface{} `json:"response_json_schema,omitempty"`
	AddContextFromInternet bool                   `json:"add_context_from_internet"`
}

// Invoke sends one generation request. With a schema the raw response body
// is the schema-shaped JSON object; without one it is a JSON string.
func (s *LLMService) Invoke(ctx context.Context, prompt string, schema map[string]interface{}, addWebContext bool) (json.RawMessage, error) {
	reqBody := invokeRequest{
		Prompt:                 prompt,
		ResponseJSONSchema:     schema,
		AddContextFromInternet: addWebContext && s.webContext,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/invoke-llm", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm provider returned status %d: %s", resp.StatusCode, string(responseBody))
	}

	return json.RawMessage(responseBody), nil
}

// InvokeText is Invoke without a schema, decoded to plain text. Used by
// the chatbot.
func (s *LLMService) InvokeText(ctx context.Context, prompt string, addWebContext bool) (string, error) {
	raw, err := s.Invoke(ctx, prompt, nil, addWebContext)
	if err != nil {
		return "", err
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}
	// Some providers wrap free text in {"response": "..."} instead.
	var wrapped struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Response != "" {
		return wrapped.Response, nil
	}
	return string(raw), nil
}
