package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, content string, gotPrompt *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if gotPrompt != nil && len(req.Messages) > 0 {
			*gotPrompt = req.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   req.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenAI_Complete(t *testing.T) {
	var prompt string
	server := chatServer(t, "\n[{\"front\":\"Q\",\"back\":\"A\"}]\n", &prompt)

	c := NewOpenAI("test-key", "gpt-4o-mini", server.URL+"/v1/")
	out, err := c.Complete(context.Background(), "build cards")

	require.NoError(t, err)
	assert.Equal(t, `[{"front":"Q","back":"A"}]`, out)
	assert.Equal(t, "build cards", prompt)
}

func TestOpenAI_EmptyContent(t *testing.T) {
	server := chatServer(t, "   ", nil)

	c := NewOpenAI("test-key", "", server.URL+"/v1")
	_, err := c.Complete(context.Background(), "p")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAI_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"nope","type":"server_error"}}`, http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := NewOpenAI("test-key", "m", server.URL+"/v1")
	_, err := c.Complete(context.Background(), "p")

	assert.Error(t, err)
}

func TestOpenAI_MissingKey(t *testing.T) {
	c := NewOpenAI("", "m", "")
	_, err := c.Complete(context.Background(), "p")

	assert.ErrorIs(t, err, ErrNoAPIKey)
}
