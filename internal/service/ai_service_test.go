package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) string {
	resp := ChatCompletionResponse{}
	resp.Choices = append(resp.Choices, struct {
		Message AIChatMessage `json:"message"`
	}{Message: AIChatMessage{Role: "assistant", Content: content}})
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestAIServiceComplete(t *testing.T) {
	var gotAuth string
	var gotReq ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("  hello world\n")))
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	got, err := svc.Complete(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got, "completion text must come back trimmed")

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "say hello", gotReq.Messages[0].Content)
}

func TestAIServiceCompleteMissingKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, Model: "test-model"})

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrUpstreamUnavailable)
	assert.False(t, called, "no request should be sent without a credential")
}

func TestAIServiceCompleteUpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error": {"message": "boom"}}`},
		{"rate limited", http.StatusTooManyRequests, `{"error": {"message": "slow down"}}`},
		{"error payload with 200", http.StatusOK, `{"error": {"message": "model overloaded"}}`},
		{"no choices", http.StatusOK, `{"choices": []}`},
		{"invalid json", http.StatusOK, `{not json`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

			_, err := svc.Complete(context.Background(), "prompt")
			assert.ErrorIs(t, err, util.ErrUpstreamUnavailable)
		})
	}
}

func TestAIServiceCompleteConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrUpstreamUnavailable)
}
