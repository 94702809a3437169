// Package imagelibrary manages the per-user collection of generated and
// uploaded images.
package imagelibrary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

type libraryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, entry *domain.ImageLibraryEntry) (*domain.ImageLibraryEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ImageLibraryFilter) ([]domain.ImageLibraryEntry, error)
	Stats(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.ImageLibraryStats, error)
	UpdateTags(ctx context.Context, userID, imageID uuid.UUID, tags []string) (*domain.ImageLibraryEntry, error)
	Delete(ctx context.Context, userID, imageID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxURLLength    = 1 << 20 // data: URLs carry the whole image
	MaxPromptLength = 4000
	MaxTags         = 30
	MaxTagLength    = 50
)

// Service provides image library operations.
type Service struct {
	library libraryRepo
	audit   auditLogger
	tx      txManager
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new ImageLibrary service.
func NewService(log *slog.Logger, library libraryRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		library: library,
		audit:   audit,
		tx:      tx,
		now:     time.Now,
		log:     log.With("service", "imagelibrary"),
	}
}
