package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/slide"
)

type slideService interface {
	CreateSlide(ctx context.Context, input slide.CreateSlideInput) (*domain.Slide, error)
	UpdateSlide(ctx context.Context, input slide.UpdateSlideInput) (*domain.Slide, error)
	DeleteSlide(ctx context.Context, presentationID, slideID uuid.UUID) error
	GetSlide(ctx context.Context, presentationID, slideID uuid.UUID) (*domain.Slide, error)
	ListSlides(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error)
	ReorderSlides(ctx context.Context, input slide.ReorderSlidesInput) ([]domain.Slide, error)
}

// SlideHandler serves /api/presentations/{id}/slides.
type SlideHandler struct {
	svc slideService
	log *slog.Logger
}

// NewSlideHandler creates a SlideHandler.
func NewSlideHandler(svc slideService, logger *slog.Logger) *SlideHandler {
	return &SlideHandler{svc: svc, log: logger.With("handler", "slide")}
}

type createSlideRequest struct {
	Order            *int                 `json:"order"`
	Template         domain.SlideTemplate `json:"template"`
	Title            string               `json:"title"`
	Content          string               `json:"content"`
	NarrationSegment *string              `json:"narrationSegment"`
	ImageURL         *string              `json:"imageUrl"`
	CanvasData       json.RawMessage      `json:"canvasData"`
	ThemeData        json.RawMessage      `json:"themeData"`
}

type updateSlideRequest struct {
	Template         *domain.SlideTemplate `json:"template"`
	Title            *string               `json:"title"`
	Content          *string               `json:"content"`
	NarrationSegment *string               `json:"narrationSegment"`
	ImageURL         *string               `json:"imageUrl"`
	CanvasData       json.RawMessage       `json:"canvasData"`
	ThemeData        json.RawMessage       `json:"themeData"`
}

type reorderSlidesRequest struct {
	SlideIDs []uuid.UUID `json:"slideIds"`
}

func (h *SlideHandler) ids(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	presentationID, ok := pathUUID(w, r, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	slideID, ok := pathUUID(w, r, "slideID")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return presentationID, slideID, true
}

// List handles GET /api/presentations/{id}/slides.
func (h *SlideHandler) List(w http.ResponseWriter, r *http.Request) {
	presentationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListSlides(r.Context(), presentationID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toSlideResponse))
}

// Get handles GET /api/presentations/{id}/slides/{slideID}.
func (h *SlideHandler) Get(w http.ResponseWriter, r *http.Request) {
	presentationID, slideID, ok := h.ids(w, r)
	if !ok {
		return
	}
	s, err := h.svc.GetSlide(r.Context(), presentationID, slideID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSlideResponse(*s))
}

// Create handles POST /api/presentations/{id}/slides.
func (h *SlideHandler) Create(w http.ResponseWriter, r *http.Request) {
	presentationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req createSlideRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.CreateSlide(r.Context(), slide.CreateSlideInput{
		PresentationID:   presentationID,
		Order:            req.Order,
		Template:         req.Template,
		Title:            req.Title,
		Content:          req.Content,
		NarrationSegment: req.NarrationSegment,
		ImageURL:         req.ImageURL,
		CanvasData:       req.CanvasData,
		ThemeData:        req.ThemeData,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSlideResponse(*s))
}

// Update handles PATCH /api/presentations/{id}/slides/{slideID}.
func (h *SlideHandler) Update(w http.ResponseWriter, r *http.Request) {
	presentationID, slideID, ok := h.ids(w, r)
	if !ok {
		return
	}
	var req updateSlideRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.UpdateSlide(r.Context(), slide.UpdateSlideInput{
		PresentationID:   presentationID,
		SlideID:          slideID,
		Template:         req.Template,
		Title:            req.Title,
		Content:          req.Content,
		NarrationSegment: req.NarrationSegment,
		ImageURL:         req.ImageURL,
		CanvasData:       req.CanvasData,
		ThemeData:        req.ThemeData,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSlideResponse(*s))
}

// Delete handles DELETE /api/presentations/{id}/slides/{slideID}.
func (h *SlideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	presentationID, slideID, ok := h.ids(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSlide(r.Context(), presentationID, slideID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /api/presentations/{id}/slides/order.
func (h *SlideHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	presentationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req reorderSlidesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	list, err := h.svc.ReorderSlides(r.Context(), slide.ReorderSlidesInput{
		PresentationID: presentationID,
		SlideIDs:       req.SlideIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toSlideResponse))
}
