package convo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// historyLimit caps the stored messages per character; older turns fall
// off so the chat context never grows without bound.
const historyLimit = 20

// maxReplyTokens caps Ollama's num_predict per reply.
const maxReplyTokens = 400

// Client talks to a local Ollama server over its chat API. Safe for
// concurrent use.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client

	mu      sync.Mutex
	history map[string][]message
}

// NewClient creates an Ollama chat client.
// Returns nil if baseURL is empty (chat features disabled).
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		return nil
	}
	if model == "" {
		model = "gemma3:4b"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		history: make(map[string][]message),
	}
}

// Enabled reports whether the client is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []message      `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	EvalCount int `json:"eval_count"`
}

// Chat sends the prompt with the character's prior turns and records the
// exchange in the per-character history.
func (c *Client) Chat(ctx context.Context, characterID, system, prompt string, temperature float64) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("chat backend not configured")
	}

	c.mu.Lock()
	prior := append([]message(nil), c.history[characterID]...)
	c.mu.Unlock()

	messages := make([]message, 0, len(prior)+2)
	if system != "" {
		messages = append(messages, message{Role: "system", Content: system})
	}
	messages = append(messages, prior...)
	messages = append(messages, message{Role: "user", Content: prompt})

	req := chatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
		Options: map[string]any{
			"temperature": temperature,
			"num_predict": maxReplyTokens,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	reply := strings.TrimSpace(apiResp.Message.Content)
	if reply == "" {
		return "", fmt.Errorf("empty response")
	}

	c.mu.Lock()
	h := append(c.history[characterID],
		message{Role: "user", Content: prompt},
		message{Role: "assistant", Content: reply},
	)
	if len(h) > historyLimit {
		h = h[len(h)-historyLimit:]
	}
	c.history[characterID] = h
	c.mu.Unlock()

	slog.Debug("ollama chat", "character", characterID, "eval_count", apiResp.EvalCount)
	return reply, nil
}

// HistoryLen returns the stored message count for a character.
func (c *Client) HistoryLen(characterID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history[characterID])
}

// ClearHistory drops a character's history, or everything when
// characterID is empty.
func (c *Client) ClearHistory(characterID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if characterID == "" {
		c.history = make(map[string][]message)
		return
	}
	delete(c.history, characterID)
}
