package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "mistralai/mistral-7b-instruct"
	DefaultReferer = "http://localhost:3000"
)

// maxResponseBytes caps how much of an upstream body is read.
var maxResponseBytes int64 = 4 << 20

// OpenRouterConfig holds the client settings. Zero values fall back to the defaults above,
// except Timeout where zero leaves the http.Client without a deadline.
type OpenRouterConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Referer  string
	AppTitle string
	Timeout  time.Duration
}

// OpenRouterProvider implements Completer against the OpenRouter chat completions API.
type OpenRouterProvider struct {
	apiKey   string
	endpoint string
	model    string
	referer  string
	appTitle string
	http     *http.Client
}

// NewOpenRouterProvider builds a provider. An empty API key is accepted here and reported
// per call, so a misconfigured server still starts and answers with a structured error.
func NewOpenRouterProvider(cfg OpenRouterConfig) *OpenRouterProvider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	referer := cfg.Referer
	if referer == "" {
		referer = DefaultReferer
	}
	return &OpenRouterProvider{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		endpoint: baseURL + "/chat/completions",
		model:    model,
		referer:  referer,
		appTitle: cfg.AppTitle,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Model reports the model identifier sent upstream.
func (p *OpenRouterProvider) Model() string {
	return p.model
}

// HasAPIKey reports whether a credential is configured.
func (p *OpenRouterProvider) HasAPIKey() bool {
	return p.apiKey != ""
}

// Complete posts prompt as the single user message and returns the first choice's content.
// The body is decoded regardless of status code: OpenRouter reports failures as JSON without
// choices, which surfaces as *ShapeError carrying the whole payload.
func (p *OpenRouterProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:    p.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openrouter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("HTTP-Referer", p.referer)
	if p.appTitle != "" {
		req.Header.Set("X-Title", p.appTitle)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", fmt.Errorf("openrouter: read response: %w", err)
	}
	if int64(len(body)) > maxResponseBytes {
		return "", &DecodeError{Err: fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &DecodeError{Err: err}
	}
	return firstChoiceContent(payload)
}
