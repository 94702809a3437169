// Package generation turns a brainstorm, a context profile and a framework
// choice into five slide drafts. The language model path may fail; the slide
// mapper then substitutes a deterministic local fallback.
package generation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// Options tunes the language model request.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// DefaultOptions favour consistent output over creativity.
func DefaultOptions() Options {
	return Options{Temperature: 0.7, MaxTokens: 2000}
}

// Service runs the generation pipeline.
type Service struct {
	llm  completer
	opts Options
	log  *slog.Logger
}

// NewService creates a generation Service. Zero option fields take DefaultOptions values.
func NewService(log *slog.Logger, llm completer, opts Options) *Service {
	def := DefaultOptions()
	if opts.Temperature <= 0 {
		opts.Temperature = def.Temperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = def.MaxTokens
	}
	return &Service{
		llm:  llm,
		opts: opts,
		log:  log.With("service", "generation"),
	}
}
