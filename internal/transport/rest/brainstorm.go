package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/brainstorm"
)

type brainstormService interface {
	CreateBrainstorm(ctx context.Context, input brainstorm.CreateBrainstormInput) (*domain.Brainstorm, error)
	UpdateBrainstorm(ctx context.Context, input brainstorm.UpdateBrainstormInput) (*domain.Brainstorm, error)
	DeleteBrainstorm(ctx context.Context, brainstormID uuid.UUID) error
	GetBrainstorm(ctx context.Context, brainstormID uuid.UUID) (*domain.Brainstorm, error)
	ListBrainstorms(ctx context.Context) ([]domain.Brainstorm, error)
	SearchBrainstorms(ctx context.Context, query string) ([]domain.Brainstorm, error)
}

// BrainstormHandler serves /api/brainstorms.
type BrainstormHandler struct {
	svc brainstormService
	log *slog.Logger
}

// NewBrainstormHandler creates a BrainstormHandler.
func NewBrainstormHandler(svc brainstormService, logger *slog.Logger) *BrainstormHandler {
	return &BrainstormHandler{svc: svc, log: logger.With("handler", "brainstorm")}
}

type createBrainstormRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

type updateBrainstormRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
}

// List handles GET /api/brainstorms?q=.
func (h *BrainstormHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []domain.Brainstorm
		err  error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		list, err = h.svc.SearchBrainstorms(r.Context(), q)
	} else {
		list, err = h.svc.ListBrainstorms(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toBrainstormResponse))
}

// Get handles GET /api/brainstorms/{id}.
func (h *BrainstormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetBrainstorm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBrainstormResponse(*b))
}

// Create handles POST /api/brainstorms.
func (h *BrainstormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBrainstormRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, err := h.svc.CreateBrainstorm(r.Context(), brainstorm.CreateBrainstormInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBrainstormResponse(*b))
}

// Update handles PATCH /api/brainstorms/{id}.
func (h *BrainstormHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateBrainstormRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, err := h.svc.UpdateBrainstorm(r.Context(), brainstorm.UpdateBrainstormInput{
		BrainstormID: id,
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		Tags:         req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBrainstormResponse(*b))
}

// Delete handles DELETE /api/brainstorms/{id}.
func (h *BrainstormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBrainstorm(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
