package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Ollama talks to a local Ollama server's generate API.
type Ollama struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	model     string
}

const (
	defaultOllamaBind = "127.0.0.1:11434"
	defaultUserAgent  = "flashcards/0.1"
)

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// NewOllama builds an Ollama completer for the host:port or URL in baseURL.
// Request deadlines come from the caller's context.
func NewOllama(baseURL, model string) (*Ollama, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Ollama{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		model:     model,
	}, nil
}

// Complete posts a non-streaming generate request.
func (o *Ollama) Complete(ctx context.Context, prompt string) (string, error) {
	if o == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload ollamaResponse
	body := ollamaRequest{Model: o.model, Prompt: prompt, Stream: false}
	if err := o.do(ctx, http.MethodPost, "/api/generate", body, &payload); err != nil {
		return "", err
	}
	if payload.Error != "" {
		return "", fmt.Errorf("ollama: %s", payload.Error)
	}
	text := strings.TrimSpace(payload.Response)
	if text == "" {
		return "", fmt.Errorf("ollama: %w", ErrEmptyResponse)
	}
	return text, nil
}

func (o *Ollama) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := o.baseURL.ResolveReference(rel)

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", o.userAgent)

	resp, err := o.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(bind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(bind)
	if trimmed == "" {
		trimmed = defaultOllamaBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", bind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
