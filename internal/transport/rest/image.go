package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/imagegen"
	"github.com/heartmarshall/fastslide-backend/internal/service/imagelibrary"
)

type imageGenerationService interface {
	GenerateImage(ctx context.Context, input imagegen.GenerateImageInput) (*imagegen.GenerateImageResult, error)
}

type imageLibraryService interface {
	SaveImage(ctx context.Context, input imagelibrary.SaveImageInput) (*domain.ImageLibraryEntry, error)
	ListImages(ctx context.Context, filter domain.ImageLibraryFilter) ([]domain.ImageLibraryEntry, error)
	UpdateTags(ctx context.Context, input imagelibrary.UpdateTagsInput) (*domain.ImageLibraryEntry, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
	Stats(ctx context.Context) (*domain.ImageLibraryStats, error)
}

// ImageHandler serves image generation and the per-user image library.
type ImageHandler struct {
	gen     imageGenerationService
	library imageLibraryService
	log     *slog.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(gen imageGenerationService, library imageLibraryService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{gen: gen, library: library, log: logger.With("handler", "image")}
}

type generateImageRequest struct {
	Prompt string            `json:"prompt"`
	Style  domain.ImageStyle `json:"style"`
	Size   domain.ImageSize  `json:"size"`
}

type generateImageResponse struct {
	URLs           []string `json:"urls"`
	Model          string   `json:"model"`
	SavedToLibrary bool     `json:"savedToLibrary"`
}

type saveImageRequest struct {
	URL         string   `json:"url"`
	Prompt      string   `json:"prompt"`
	Style       string   `json:"style"`
	AIModel     string   `json:"aiModel"`
	Tags        []string `json:"tags"`
	IsGenerated bool     `json:"isGenerated"`
}

type updateTagsRequest struct {
	Tags []string `json:"tags"`
}

// Generate handles POST /api/images/generate.
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.gen.GenerateImage(r.Context(), imagegen.GenerateImageInput{
		Prompt: req.Prompt,
		Style:  req.Style,
		Size:   req.Size,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generateImageResponse{
		URLs:           res.URLs,
		Model:          res.Model,
		SavedToLibrary: res.SavedToLibrary,
	})
}

// List handles GET /api/images?style=&aiModel=&tags=a,b&q=.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ImageLibraryFilter{
		Style:   q.Get("style"),
		AIModel: q.Get("aiModel"),
		Search:  q.Get("q"),
	}
	for _, raw := range q["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	list, err := h.library.ListImages(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toImageResponse))
}

// Save handles POST /api/images.
func (h *ImageHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := h.library.SaveImage(r.Context(), imagelibrary.SaveImageInput{
		URL:         req.URL,
		Prompt:      req.Prompt,
		Style:       req.Style,
		AIModel:     req.AIModel,
		Tags:        req.Tags,
		IsGenerated: req.IsGenerated,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toImageResponse(*e))
}

// UpdateTags handles PATCH /api/images/{id}/tags.
func (h *ImageHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateTagsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := h.library.UpdateTags(r.Context(), imagelibrary.UpdateTagsInput{ImageID: id, Tags: req.Tags})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toImageResponse(*e))
}

// Delete handles DELETE /api/images/{id}.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.library.DeleteImage(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/images/stats.
func (h *ImageHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.library.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, imageStatsResponse{
		TotalImages: st.TotalImages,
		ByStyle:     nonNilCounts(st.ByStyle),
		ByModel:     nonNilCounts(st.ByModel),
		RecentCount: st.RecentCount,
	})
}

func nonNilCounts(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
