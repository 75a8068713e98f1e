package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "  ", "gemini-2.5-flash", "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGemini_Complete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": `[{"front":"Q","back":"A"}]`}},
					},
				},
			},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewGemini(context.Background(), "test-key", "gemini-2.5-flash", server.URL)
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "build cards")
	require.NoError(t, err)
	assert.Equal(t, `[{"front":"Q","back":"A"}]`, out)
	assert.True(t, strings.HasSuffix(gotPath, "gemini-2.5-flash:generateContent"), "path %q", gotPath)
}
