package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/util"
)

// Completer is the single outbound dependency of the generation pipeline.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AIService talks to an OpenAI-compatible chat-completions endpoint.
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		// The upstream applies no deadline of its own; 30s keeps a hung
		// completion from pinning the request forever.
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// UpdateConfig swaps the upstream credentials, e.g. after a config reload.
// In-flight requests finish with the old values.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt as a single user message and returns the trimmed
// completion text. Every failure mode (missing credential, transport error,
// timeout, non-2xx, empty completion) comes back as ErrUpstreamUnavailable.
// One attempt only; retry policy, if any, belongs to the caller.
func (s *AIService) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	if cfg.APIKey == "" {
		return "", fmt.Errorf("%w: API key not configured", util.ErrUpstreamUnavailable)
	}

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrUpstreamUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrUpstreamUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", util.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrUpstreamUnavailable, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", util.ErrUpstreamUnavailable, result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", util.ErrUpstreamUnavailable)
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
