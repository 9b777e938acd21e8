package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"procurv/internal/config"
)

// Completer is the hosted completion dependency of the chat service. Any
// failure is absorbed by the caller's deterministic fallback, never surfaced
// to the end user.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// GroqClient talks to Groq's OpenAI-compatible chat completion endpoint
type GroqClient struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// NewGroqClient creates a completion client from chat configuration
func NewGroqClient(cfg config.ChatConfig) *GroqClient {
	return &GroqClient{
		endpoint: strings.TrimSpace(cfg.Endpoint),
		model:    cfg.Model,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string              `json:"model"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
	Messages    []completionMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user exchange and returns the assistant message
func (g *GroqClient) Complete(ctx context.Context, system, user string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("groq: no API key configured")
	}

	reqBody, err := json.Marshal(completionRequest{
		Model:       g.model,
		Temperature: 0.3,
		MaxTokens:   512,
		Messages: []completionMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("groq: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq: completion endpoint returned %s", resp.Status)
	}

	var decoded completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("groq: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("groq: empty completion")
	}
	return decoded.Choices[0].Message.Content, nil
}
