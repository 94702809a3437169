// Package openai adapts the OpenAI chat and image APIs to the generation
// pipeline. Each SDK call sits behind a one-method interface so tests can
// substitute it.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

const defaultChatModel = goopenai.GPT4o

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

var _ chatCompleter = (*goopenai.Client)(nil)

// Config holds the connection settings shared by the chat and image clients.
type Config struct {
	APIKey  string
	BaseURL string // empty = api.openai.com
	Model   string
	Timeout time.Duration // zero = no client-side timeout
}

func newSDKClient(cfg Config) *goopenai.Client {
	c := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		c.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return goopenai.NewClientWithConfig(c)
}

// ChatClient sends structured chat completion requests.
type ChatClient struct {
	api    chatCompleter
	model  string
	hasKey bool
	log    *slog.Logger
}

// NewChatClient creates a ChatClient. An empty model selects gpt-4o.
func NewChatClient(cfg Config, logger *slog.Logger) *ChatClient {
	model := cfg.Model
	if model == "" {
		model = defaultChatModel
	}
	return &ChatClient{
		api:    newSDKClient(cfg),
		model:  model,
		hasKey: cfg.APIKey != "",
		log:    logger.With("adapter", "openai.chat"),
	}
}

// Complete sends a system and a user message and returns the first choice's content.
func (c *ChatClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if !c.hasKey {
		return "", ErrNoCredential
	}

	chatReq := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: req.System},
			{Role: goopenai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSON {
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", classifyError(err))
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion: %w", ErrEmptyResponse)
	}

	c.log.DebugContext(ctx, "chat completion",
		slog.String("model", c.model),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// Name identifies the provider in metrics.
func (c *ChatClient) Name() string { return "openai" }
