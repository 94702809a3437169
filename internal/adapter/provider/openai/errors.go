package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

// Errors returned by the OpenAI adapters, always wrapped with the API message.
var (
	ErrNoCredential  = errors.New("openai: api key not configured")
	ErrAuthFailed    = errors.New("openai: authentication failed")
	ErrRateLimit     = errors.New("openai: rate limit exceeded")
	ErrQuotaExceeded = errors.New("openai: quota exceeded")
	ErrTimeout       = errors.New("openai: request timed out")
	ErrBadRequest    = errors.New("openai: bad request")
	ErrEmptyResponse = errors.New("openai: empty response")
)

// classifyError maps go-openai API errors to the sentinels above.
func classifyError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			if strings.Contains(apiErr.Message, "quota") || strings.Contains(apiErr.Message, "billing") {
				return fmt.Errorf("%s: %w", apiErr.Message, ErrQuotaExceeded)
			}
			return fmt.Errorf("%s: %w", apiErr.Message, ErrRateLimit)
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w", apiErr.Message, ErrAuthFailed)
		case http.StatusBadRequest, http.StatusNotFound:
			return fmt.Errorf("%s: %w", apiErr.Message, ErrBadRequest)
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return fmt.Errorf("%s: %w", apiErr.Message, ErrTimeout)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", ErrTimeout)
	}

	return err
}
