package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/dshills/cerascan/internal/config"
)

// Client talks to an OpenAI-compatible chat-completion endpoint.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	log         *zap.Logger
}

// New builds a Client from the resolved configuration. The HTTP timeout
// bounds the single completion call; there is no retry.
func New(cfg config.Config, log *zap.Logger) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	return &Client{
		api:         openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log,
	}
}

// Complete sends the prompt as a single user message and returns the raw
// content of the first choice. The endpoint is asked for a JSON object
// response; timeouts and non-2xx statuses are terminal errors.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in completion response")
	}
	c.log.Debug("completion received", zap.Int("chars", len(content)))
	return content, nil
}

// Sanitize recovers a bare JSON object from a reply wrapped in a fenced code
// block by taking everything from the first '{' through the last '}'.
// Best-effort: replies without a fence, or without a brace pair, pass through
// unchanged. Known limitation: the first/last-brace heuristic assumes one
// well-formed object and is wrong for multiple objects or trailing prose
// containing braces.
func Sanitize(content string) string {
	clean := strings.TrimSpace(content)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 || end < start {
		return clean
	}
	return clean[start : end+1]
}
