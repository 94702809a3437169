// Package limiter throttles outbound model calls with a token bucket and
// records their latency.
package limiter

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/metrics"
)

type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

type imageGenerator interface {
	HasCredential() bool
	Generate(ctx context.Context, model, prompt, size string) ([]string, error)
}

// New returns a limiter allowing perSecond calls with the given burst.
// perSecond <= 0 disables throttling.
func New(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Completer wraps a completer.
type Completer struct {
	next     completer
	limiter  *rate.Limiter
	provider string
}

// NewCompleter wraps next. provider labels the latency metric.
func NewCompleter(next completer, limiter *rate.Limiter, provider string) *Completer {
	return &Completer{next: next, limiter: limiter, provider: provider}
}

// Complete waits for a token, then delegates.
func (c *Completer) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	out, err := c.next.Complete(ctx, req)
	metrics.LLMRequestDuration.WithLabelValues(c.provider, "chat").Observe(time.Since(start).Seconds())

	return out, err
}

// ImageGenerator wraps an image generator.
type ImageGenerator struct {
	next     imageGenerator
	limiter  *rate.Limiter
	provider string
}

// NewImageGenerator wraps next. provider labels the latency metric.
func NewImageGenerator(next imageGenerator, limiter *rate.Limiter, provider string) *ImageGenerator {
	return &ImageGenerator{next: next, limiter: limiter, provider: provider}
}

// HasCredential delegates without consuming a token.
func (g *ImageGenerator) HasCredential() bool { return g.next.HasCredential() }

// Generate waits for a token, then delegates.
func (g *ImageGenerator) Generate(ctx context.Context, model, prompt, size string) ([]string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	urls, err := g.next.Generate(ctx, model, prompt, size)
	metrics.LLMRequestDuration.WithLabelValues(g.provider, "image").Observe(time.Since(start).Seconds())

	return urls, err
}
