package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

type imageCreator interface {
	CreateImage(ctx context.Context, req goopenai.ImageRequest) (goopenai.ImageResponse, error)
}

var _ imageCreator = (*goopenai.Client)(nil)

// ImageClient calls the image generation endpoint for a given model.
type ImageClient struct {
	api    imageCreator
	hasKey bool
	log    *slog.Logger
}

// NewImageClient creates an ImageClient. cfg.Model is ignored: the model is chosen per call.
func NewImageClient(cfg Config, logger *slog.Logger) *ImageClient {
	return &ImageClient{
		api:    newSDKClient(cfg),
		hasKey: cfg.APIKey != "",
		log:    logger.With("adapter", "openai.image"),
	}
}

// HasCredential reports whether an API key is configured.
func (c *ImageClient) HasCredential() bool { return c.hasKey }

// Generate requests one image and returns every URL found in the response.
func (c *ImageClient) Generate(ctx context.Context, model, prompt, size string) ([]string, error) {
	if !c.hasKey {
		return nil, ErrNoCredential
	}

	req := goopenai.ImageRequest{
		Prompt: prompt,
		Model:  model,
		N:      1,
		Size:   size,
	}
	// gpt-image models reject response_format and always return base64.
	if strings.HasPrefix(model, "dall-e") {
		req.ResponseFormat = goopenai.CreateImageResponseFormatURL
	}

	resp, err := c.api.CreateImage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create image (%s): %w", model, classifyError(err))
	}

	urls := extractImageURLs(resp)
	if len(urls) == 0 {
		return nil, fmt.Errorf("create image (%s): %w", model, ErrEmptyResponse)
	}

	c.log.DebugContext(ctx, "image created",
		slog.String("model", model),
		slog.Int("images", len(urls)),
	)

	return urls, nil
}

// extractImageURLs is the single place that knows the response shapes:
// a hosted url, else inline base64 rendered as a data URL. Entries with
// neither are skipped.
func extractImageURLs(resp goopenai.ImageResponse) []string {
	urls := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		switch {
		case d.URL != "":
			urls = append(urls, d.URL)
		case d.B64JSON != "":
			urls = append(urls, "data:image/png;base64,"+d.B64JSON)
		}
	}
	return urls
}
