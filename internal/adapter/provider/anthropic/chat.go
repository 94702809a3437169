// Package anthropic is an alternative chat completer backed by the Claude
// Messages API, selected with LLM_PROVIDER=anthropic.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

const defaultModel = "claude-sonnet-4-5"

// ErrNoCredential is returned when no API key is configured.
var ErrNoCredential = errors.New("anthropic: api key not configured")

// Config holds the Claude connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ChatClient sends one system + user turn and returns the reply text.
type ChatClient struct {
	client anthropic.Client
	model  string
	hasKey bool
	log    *slog.Logger
}

// NewChatClient creates a ChatClient.
func NewChatClient(cfg Config, logger *slog.Logger) *ChatClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &ChatClient{
		client: anthropic.NewClient(opts...),
		model:  model,
		hasKey: cfg.APIKey != "",
		log:    logger.With("adapter", "anthropic.chat"),
	}
}

// Complete sends the request. Claude has no JSON response mode, so when
// req.JSON is set the reply is cut down to its outermost JSON object.
func (c *ChatClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if !c.hasKey {
		return "", ErrNoCredential
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(float64(req.Temperature)),
		System:      []anthropic.TextBlockParam{{Text: req.System}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("messages api call: empty response")
	}

	text := msg.Content[0].Text
	if req.JSON {
		text, err = extractJSON(text)
		if err != nil {
			return "", fmt.Errorf("extract json: %w", err)
		}
	}

	c.log.DebugContext(ctx, "message created",
		slog.String("model", c.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return text, nil
}

// Name identifies the provider in metrics.
func (c *ChatClient) Name() string { return "anthropic" }

// extractJSON returns the first complete JSON object in s. Text before the
// first "{" and anything after the object it opens are ignored.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}
	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(s[start:])).Decode(&raw); err != nil {
		return "", fmt.Errorf("no JSON object found in response: %w", err)
	}
	return string(raw), nil
}
