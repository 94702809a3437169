package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/contextprofile"
)

type contextProfileService interface {
	CreateProfile(ctx context.Context, input contextprofile.CreateProfileInput) (*domain.ContextProfile, error)
	CreateDefaultProfile(ctx context.Context, input contextprofile.CreateDefaultInput) (*domain.ContextProfile, error)
	UpdateProfile(ctx context.Context, input contextprofile.UpdateProfileInput) (*domain.ContextProfile, error)
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error
	GetProfile(ctx context.Context, profileID uuid.UUID) (*domain.ContextProfile, error)
	ListProfiles(ctx context.Context) ([]domain.ContextProfile, error)
	SearchProfiles(ctx context.Context, query string) ([]domain.ContextProfile, error)
}

// ContextProfileHandler serves /api/context-profiles.
type ContextProfileHandler struct {
	svc contextProfileService
	log *slog.Logger
}

// NewContextProfileHandler creates a ContextProfileHandler.
func NewContextProfileHandler(svc contextProfileService, logger *slog.Logger) *ContextProfileHandler {
	return &ContextProfileHandler{svc: svc, log: logger.With("handler", "context_profile")}
}

type createProfileRequest struct {
	Name           string          `json:"name"`
	BusinessType   string          `json:"businessType"`
	TargetAudience string          `json:"targetAudience"`
	Objectives     string          `json:"objectives"`
	BrandTone      string          `json:"brandTone"`
	Preferences    json.RawMessage `json:"preferences"`
}

type createDefaultProfileRequest struct {
	Name        string            `json:"name"`
	Audience    string            `json:"audience"`
	Objectives  []string          `json:"objectives"`
	Preferences map[string]string `json:"preferences"`
}

type updateProfileRequest struct {
	Name           *string         `json:"name"`
	BusinessType   *string         `json:"businessType"`
	TargetAudience *string         `json:"targetAudience"`
	Objectives     *string         `json:"objectives"`
	BrandTone      *string         `json:"brandTone"`
	Preferences    json.RawMessage `json:"preferences"`
}

// List handles GET /api/context-profiles?q=.
func (h *ContextProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []domain.ContextProfile
		err  error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		list, err = h.svc.SearchProfiles(r.Context(), q)
	} else {
		list, err = h.svc.ListProfiles(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toContextProfileResponse))
}

// Get handles GET /api/context-profiles/{id}.
func (h *ContextProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	cp, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContextProfileResponse(*cp))
}

// Create handles POST /api/context-profiles.
func (h *ContextProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	cp, err := h.svc.CreateProfile(r.Context(), contextprofile.CreateProfileInput{
		Name:           req.Name,
		BusinessType:   req.BusinessType,
		TargetAudience: req.TargetAudience,
		Objectives:     req.Objectives,
		BrandTone:      req.BrandTone,
		Preferences:    req.Preferences,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContextProfileResponse(*cp))
}

// CreateDefault handles POST /api/context-profiles/default.
func (h *ContextProfileHandler) CreateDefault(w http.ResponseWriter, r *http.Request) {
	var req createDefaultProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	cp, err := h.svc.CreateDefaultProfile(r.Context(), contextprofile.CreateDefaultInput{
		Name:        req.Name,
		Audience:    req.Audience,
		Objectives:  req.Objectives,
		Preferences: req.Preferences,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContextProfileResponse(*cp))
}

// Update handles PATCH /api/context-profiles/{id}.
func (h *ContextProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	cp, err := h.svc.UpdateProfile(r.Context(), contextprofile.UpdateProfileInput{
		ProfileID:      id,
		Name:           req.Name,
		BusinessType:   req.BusinessType,
		TargetAudience: req.TargetAudience,
		Objectives:     req.Objectives,
		BrandTone:      req.BrandTone,
		Preferences:    req.Preferences,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContextProfileResponse(*cp))
}

// Delete handles DELETE /api/context-profiles/{id}.
func (h *ContextProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProfile(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
