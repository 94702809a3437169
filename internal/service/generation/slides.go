package generation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/metrics"
)

// NarrationLimit is the maximum narration segment length in characters.
const NarrationLimit = 200

// Reply slot names in presentation order.
const (
	SlotHook       = "hookSlide"
	SlotWhat       = "whatSlide"
	SlotWhy        = "whySlide"
	SlotHow        = "howSlide"
	SlotConclusion = "conclusionSlide"
)

var slotOrder = []string{SlotHook, SlotWhat, SlotWhy, SlotHow, SlotConclusion}

// slotTemplates assigns the layout by slot, not by content.
var slotTemplates = map[string]domain.SlideTemplate{
	SlotHook:       domain.SlideTemplateCover,
	SlotWhat:       domain.SlideTemplateTextLeftImageRight,
	SlotWhy:        domain.SlideTemplateTextRightImageLeft,
	SlotHow:        domain.SlideTemplateTextLeftImageRight,
	SlotConclusion: domain.SlideTemplateFullText,
}

func slotContent(p *domain.AIGeneratedPresentation, name string) *domain.AISlideContent {
	switch name {
	case SlotHook:
		return p.HookSlide
	case SlotWhat:
		return p.WhatSlide
	case SlotWhy:
		return p.WhySlide
	case SlotHow:
		return p.HowSlide
	case SlotConclusion:
		return p.ConclusionSlide
	}
	return nil
}

// GenerateSlidesInput is the input of GenerateSlides.
type GenerateSlidesInput struct {
	Brainstorm     domain.Brainstorm
	ContextProfile domain.ContextProfile
	ContentAngle   domain.ContentAngle
	HookAngle      *domain.HookAngle
}

// GenerateSlides always returns exactly five slides in slot order. Any
// failure of the language model path is logged and replaced by FallbackSlides;
// callers can't tell the two paths apart from the result.
func (s *Service) GenerateSlides(ctx context.Context, input GenerateSlidesInput) []domain.AIGeneratedSlide {
	content, err := s.GeneratePresentationContent(ctx, GenerateContentInput{
		BrainstormContent: input.Brainstorm.Content,
		Audience:          input.ContextProfile.TargetAudience,
		ContentAngle:      input.ContentAngle,
		HookAngle:         input.HookAngle,
	})
	if err != nil {
		s.log.WarnContext(ctx, "slide generation fell back to local slides",
			slog.String("generation.path", "fallback"),
			slog.String("brainstorm_id", input.Brainstorm.ID.String()),
			slog.String("error", err.Error()),
		)
		metrics.GenerationTotal.WithLabelValues("fallback").Inc()
		return FallbackSlides(input.Brainstorm.Title, input.Brainstorm.Content, input.ContextProfile.TargetAudience)
	}

	slides := MapSlides(content)

	s.log.InfoContext(ctx, "slides generated",
		slog.String("generation.path", "llm"),
		slog.String("brainstorm_id", input.Brainstorm.ID.String()),
		slog.String("content_angle", input.ContentAngle.String()),
	)
	metrics.GenerationTotal.WithLabelValues("llm").Inc()

	return slides
}

// MapSlides converts a complete reply into slides. p must have passed ParsePresentation.
func MapSlides(p *domain.AIGeneratedPresentation) []domain.AIGeneratedSlide {
	slides := make([]domain.AIGeneratedSlide, 0, len(slotOrder))
	for _, name := range slotOrder {
		c := slotContent(p, name)
		slides = append(slides, newSlide(name, c.Title, c.Content))
	}
	return slides
}

func newSlide(slot, title, content string) domain.AIGeneratedSlide {
	return domain.AIGeneratedSlide{
		Title:            title,
		Content:          content,
		Template:         slotTemplates[slot],
		NarrationSegment: Narration(content),
	}
}

// Narration cuts content to NarrationLimit characters with no word-boundary
// trimming. The result is always a prefix of content.
func Narration(content string) string {
	return truncate(content, NarrationLimit)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func audienceOrDefault(audience string) string {
	if strings.TrimSpace(audience) == "" {
		return DefaultAudience
	}
	return audience
}
