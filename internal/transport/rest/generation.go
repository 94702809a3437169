package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/generation"
)

type contentGenerator interface {
	GeneratePresentationContent(ctx context.Context, input generation.GenerateContentInput) (*domain.AIGeneratedPresentation, error)
}

// GenerationHandler serves the raw five-slot content generation endpoint.
// Unlike presentation generation there is no fallback here: a failed model
// call surfaces as 502.
type GenerationHandler struct {
	gen contentGenerator
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(gen contentGenerator, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{gen: gen, log: logger.With("handler", "generation")}
}

type generateContentRequest struct {
	BrainstormContent string              `json:"brainstormContent"`
	Audience          string              `json:"audience"`
	ContentAngle      domain.ContentAngle `json:"contentAngle"`
	HookAngle         *domain.HookAngle   `json:"hookAngle"`
}

// Content handles POST /api/generation/content.
func (h *GenerationHandler) Content(w http.ResponseWriter, r *http.Request) {
	var req generateContentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.BrainstormContent == "" {
		handleError(h.log, w, r, domain.NewValidationError("brainstormContent", "required"))
		return
	}
	if !req.ContentAngle.IsValid() {
		handleError(h.log, w, r, domain.NewValidationError("contentAngle", "invalid value"))
		return
	}

	p, err := h.gen.GeneratePresentationContent(r.Context(), generation.GenerateContentInput{
		BrainstormContent: req.BrainstormContent,
		Audience:          req.Audience,
		ContentAngle:      req.ContentAngle,
		HookAngle:         req.HookAngle,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, aiPresentationResponse{
		HookSlide:       toAISlide(p.HookSlide),
		WhatSlide:       toAISlide(p.WhatSlide),
		WhySlide:        toAISlide(p.WhySlide),
		HowSlide:        toAISlide(p.HowSlide),
		ConclusionSlide: toAISlide(p.ConclusionSlide),
	})
}
