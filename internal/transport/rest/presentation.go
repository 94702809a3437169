package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/presentation"
)

type presentationService interface {
	CreatePresentation(ctx context.Context, input presentation.CreatePresentationInput) (*domain.Presentation, error)
	UpdatePresentation(ctx context.Context, input presentation.UpdatePresentationInput) (*domain.Presentation, error)
	DeletePresentation(ctx context.Context, presentationID uuid.UUID) error
	GetPresentation(ctx context.Context, presentationID uuid.UUID) (*domain.PresentationWithDetails, error)
	ListPresentations(ctx context.Context) ([]domain.Presentation, error)
	SearchPresentations(ctx context.Context, query string) ([]domain.Presentation, error)
	GeneratePresentation(ctx context.Context, input presentation.GeneratePresentationInput) (*domain.PresentationWithDetails, error)
	QuickStart(ctx context.Context, input presentation.QuickStartInput) (*domain.PresentationWithDetails, error)
}

// PresentationHandler serves /api/presentations.
type PresentationHandler struct {
	svc presentationService
	log *slog.Logger
}

// NewPresentationHandler creates a PresentationHandler.
func NewPresentationHandler(svc presentationService, logger *slog.Logger) *PresentationHandler {
	return &PresentationHandler{svc: svc, log: logger.With("handler", "presentation")}
}

type createPresentationRequest struct {
	BrainstormID     uuid.UUID           `json:"brainstormId"`
	ContextProfileID uuid.UUID           `json:"contextProfileId"`
	Title            string              `json:"title"`
	ContentAngle     domain.ContentAngle `json:"contentAngle"`
	HookAngle        *domain.HookAngle   `json:"hookAngle"`
	Narration        *string             `json:"narration"`
}

type updatePresentationRequest struct {
	Title        *string              `json:"title"`
	ContentAngle *domain.ContentAngle `json:"contentAngle"`
	HookAngle    *domain.HookAngle    `json:"hookAngle"`
	Narration    *string              `json:"narration"`
}

type generatePresentationRequest struct {
	BrainstormID     uuid.UUID           `json:"brainstormId"`
	ContextProfileID uuid.UUID           `json:"contextProfileId"`
	Title            string              `json:"title"`
	ContentAngle     domain.ContentAngle `json:"contentAngle"`
	HookAngle        *domain.HookAngle   `json:"hookAngle"`
}

type quickStartRequest struct {
	Content      string              `json:"content"`
	Audience     string              `json:"audience"`
	ContentAngle domain.ContentAngle `json:"contentAngle"`
	HookAngle    *domain.HookAngle   `json:"hookAngle"`
}

// List handles GET /api/presentations?q=.
func (h *PresentationHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []domain.Presentation
		err  error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		list, err = h.svc.SearchPresentations(r.Context(), q)
	} else {
		list, err = h.svc.ListPresentations(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toPresentationResponse))
}

// Get handles GET /api/presentations/{id}.
func (h *PresentationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetPresentation(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPresentationDetailsResponse(*p))
}

// Create handles POST /api/presentations. The presentation starts with no slides.
func (h *PresentationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPresentationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.CreatePresentation(r.Context(), presentation.CreatePresentationInput{
		BrainstormID:     req.BrainstormID,
		ContextProfileID: req.ContextProfileID,
		Title:            req.Title,
		ContentAngle:     req.ContentAngle,
		HookAngle:        req.HookAngle,
		Narration:        req.Narration,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPresentationResponse(*p))
}

// Update handles PATCH /api/presentations/{id}. An empty hookAngle clears it.
func (h *PresentationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updatePresentationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.UpdatePresentation(r.Context(), presentation.UpdatePresentationInput{
		PresentationID: id,
		Title:          req.Title,
		ContentAngle:   req.ContentAngle,
		HookAngle:      req.HookAngle,
		Narration:      req.Narration,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPresentationResponse(*p))
}

// Delete handles DELETE /api/presentations/{id}.
func (h *PresentationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePresentation(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Generate handles POST /api/presentations/generate.
func (h *PresentationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generatePresentationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.GeneratePresentation(r.Context(), presentation.GeneratePresentationInput{
		BrainstormID:     req.BrainstormID,
		ContextProfileID: req.ContextProfileID,
		Title:            req.Title,
		ContentAngle:     req.ContentAngle,
		HookAngle:        req.HookAngle,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPresentationDetailsResponse(*p))
}

// QuickStart handles POST /api/presentations/quick-start.
func (h *PresentationHandler) QuickStart(w http.ResponseWriter, r *http.Request) {
	var req quickStartRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.QuickStart(r.Context(), presentation.QuickStartInput{
		Content:      req.Content,
		Audience:     req.Audience,
		ContentAngle: req.ContentAngle,
		HookAngle:    req.HookAngle,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPresentationDetailsResponse(*p))
}
