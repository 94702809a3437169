// Package imagegen turns a slide image request into a generated image URL.
// The primary model is tried first and the fallback model second; a
// successful image is recorded in the user's library on a best-effort basis.
package imagegen

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

type imageGenerator interface {
	HasCredential() bool
	Generate(ctx context.Context, model, prompt, size string) ([]string, error)
}

type libraryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, entry *domain.ImageLibraryEntry) (*domain.ImageLibraryEntry, error)
}

// Models names the image models tried in order.
type Models struct {
	Primary     string
	Fallback    string
	DefaultSize domain.ImageSize
}

// Service generates images.
type Service struct {
	images  imageGenerator
	library libraryRepo
	models  Models
	log     *slog.Logger
}

// NewService creates an image generation Service.
func NewService(log *slog.Logger, images imageGenerator, library libraryRepo, models Models) *Service {
	return &Service{
		images:  images,
		library: library,
		models:  models,
		log:     log.With("service", "imagegen"),
	}
}

// GenerateImageResult is the outcome of one generation request.
type GenerateImageResult struct {
	URLs           []string
	Model          string
	SavedToLibrary bool
}
