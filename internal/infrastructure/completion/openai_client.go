package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"ktisk/internal/usecase/interfaces"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 60 * time.Second

	maxErrorBodyBytes = 512
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint. Both
// the plan generator and the difficulty classifier go through here; the
// provider is treated as an opaque text-completion service.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ interfaces.ICompletionClient = (*OpenAIClient)(nil)

// NewOpenAIClientFromEnv reads OPENAI_API_KEY, OPENAI_BASE_URL and
// OPENAI_MODEL. A missing key is a configuration error, not a runtime one:
// the client is still constructed so the rest of the API can boot, and every
// completion call fails with interfaces.ErrCompletionNotConfigured until the
// deployment is fixed.
func NewOpenAIClientFromEnv() *OpenAIClient {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		log.Printf("[completion][client] missing OPENAI_API_KEY; generation and classification are disabled")
	} else {
		log.Printf("[completion][client] completion client initialized")
	}

	return NewOpenAIClient(apiKey, getenvDefault("OPENAI_BASE_URL", defaultBaseURL), getenvDefault("OPENAI_MODEL", defaultModel))
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat-completion request and returns the first choice's
// text. Exactly one attempt; a non-2xx status carries the upstream error body
// back to the caller for diagnostics.
func (c *OpenAIClient) Complete(ctx context.Context, req interfaces.CompletionRequest) (string, error) {
	if c == nil || c.apiKey == "" {
		return "", interfaces.ErrCompletionNotConfigured
	}

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[completion][client] request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[completion][client] upstream status=%d body_len=%d", resp.StatusCode, len(respBody))
		return "", fmt.Errorf("completion request failed: status %d: %s", resp.StatusCode, truncate(respBody, maxErrorBodyBytes))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("completion response unmarshal failed: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
