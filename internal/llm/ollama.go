package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "http://localhost:11434"

// Decoding temperatures. Commit messages are generated slightly colder than
// analysis to keep them terse.
const (
	analyzeTemperature = 0.3
	commitTemperature  = 0.2
)

// Client is an Ollama chat client for a single model.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	log     zerolog.Logger
}

// New creates a Client for model. OLLAMA_HOST overrides the default local
// server URL.
func New(model string) *Client {
	baseURL := os.Getenv("OLLAMA_HOST")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL: baseURL + "/api/chat",
		model:   model,
		client:  &http.Client{Timeout: 300 * time.Second},
		log:     zerolog.Nop(),
	}
}

// SetLogger enables debug tracing of chat requests.
func (c *Client) SetLogger(log zerolog.Logger) { c.log = log }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

func (c *Client) chat(ctx context.Context, messages []chatMessage, temperature float64) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
		Options:  chatOptions{Temperature: temperature},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	c.log.Debug().
		Str("model", c.model).
		Int("status", httpResp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("ollama chat")

	if httpResp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("model %q not found (status 404): %s", c.model, strings.TrimSpace(string(respBody)))
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama error (status %d): %s", httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	return result.Message.Content, nil
}

// Analyze sends the diff and returns the model's markdown analysis:
// summary, key changes, potential risks.
func (c *Client) Analyze(ctx context.Context, diff, lang string) (string, error) {
	if strings.TrimSpace(diff) == "" {
		return "No changes to analyze (or diff empty after filtering).", nil
	}
	return c.chat(ctx, []chatMessage{
		{Role: "system", Content: analysisPrompt(lang)},
		{Role: "user", Content: "```diff\n" + diff + "\n```"},
	}, analyzeTemperature)
}

// CommitMessage generates a single commit-message line, at most 72
// characters, with surrounding quotes stripped.
func (c *Client) CommitMessage(ctx context.Context, diff, lang string) (string, error) {
	if strings.TrimSpace(diff) == "" {
		return "Update", nil
	}
	content, err := c.chat(ctx, []chatMessage{
		{Role: "user", Content: "```diff\n" + diff + "\n```\n\n" + commitPrompt(lang)},
	}, commitTemperature)
	if err != nil {
		return "", err
	}
	return cleanCommitMessage(content), nil
}

func cleanCommitMessage(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "Update"
	}
	for _, q := range []string{`"`, `'`, "`"} {
		if len(text) > 2 && strings.HasPrefix(text, q) && strings.HasSuffix(text, q) {
			text = text[1 : len(text)-1]
		}
	}
	if utf8.RuneCountInString(text) > 72 {
		text = string([]rune(text)[:72])
	}
	return text
}

// IsConnectError reports whether err looks like a failure to reach the
// Ollama server. Classification is by message heuristic; the transport
// wraps refused connections with text containing "connect".
func IsConnectError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connect") || strings.Contains(msg, "connection")
}

// IsModelNotFound reports whether err indicates the requested model is not
// installed on the server.
func IsModelNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}
