package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/framework"
)

// GenerateContentInput is the input of GeneratePresentationContent.
type GenerateContentInput struct {
	BrainstormContent string
	Audience          string
	ContentAngle      domain.ContentAngle
	HookAngle         *domain.HookAngle
}

// GeneratePresentationContent issues one structured chat request and parses
// the reply into the five-slot shape. There is no retry at this layer.
func (s *Service) GeneratePresentationContent(ctx context.Context, input GenerateContentInput) (*domain.AIGeneratedPresentation, error) {
	angle, err := framework.ContentAngleByName(input.ContentAngle)
	if err != nil {
		return nil, err
	}

	var hook *framework.HookAngle
	if input.HookAngle != nil {
		h, err := framework.HookAngleByName(*input.HookAngle)
		if err != nil {
			return nil, err
		}
		hook = &h
	}

	audience := strings.TrimSpace(input.Audience)
	if audience == "" {
		audience = DefaultAudience
	}

	req := domain.CompletionRequest{
		System: BuildPresentationPrompt(PromptConfig{
			ContentAngle: angle,
			HookAngle:    hook,
			Audience:     audience,
		}),
		User:        BuildUserPrompt(input.BrainstormContent),
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
		JSON:        true,
	}

	reply, err := s.llm.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("complete: %w: %w", domain.ErrGeneration, err)
	}

	result, err := ParsePresentation(reply)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "presentation content generated",
		slog.String("content_angle", input.ContentAngle.String()),
		slog.Int("reply_bytes", len(reply)),
	)

	return result, nil
}

// ParsePresentation decodes a model reply. Text around the first JSON object
// (markdown fences, preambles, trailing notes) is ignored. Every slot must be present
// and non-null.
func ParsePresentation(reply string) (*domain.AIGeneratedPresentation, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("empty reply: %w", domain.ErrGeneration)
	}

	raw, err := extractJSON(reply)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	var p domain.AIGeneratedPresentation
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode reply: %w: %w", domain.ErrGeneration, err)
	}

	var missing []string
	for _, name := range slotOrder {
		if slotContent(&p, name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("reply missing %s: %w", strings.Join(missing, ", "), domain.ErrGeneration)
	}

	return &p, nil
}

// extractJSON returns the first complete JSON object in s. Text before the
// first "{" and anything after the object it opens are ignored.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	if start == -1 {
		return "", fmt.Errorf("no JSON object found in reply")
	}
	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(s[start:])).Decode(&raw); err != nil {
		return "", fmt.Errorf("no JSON object found in reply: %w", err)
	}
	return string(raw), nil
}
