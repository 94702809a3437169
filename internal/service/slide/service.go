// Package slide edits the slides of a presentation: single-slide CRUD,
// delete with reindexing and whole-deck reordering.
package slide

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type slideRepo interface {
	GetByID(ctx context.Context, presentationID, slideID uuid.UUID) (*domain.Slide, error)
	ListByPresentation(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error)
	NextOrder(ctx context.Context, presentationID uuid.UUID) (int, error)
	Create(ctx context.Context, s *domain.Slide) (*domain.Slide, error)
	Update(ctx context.Context, presentationID, slideID uuid.UUID, params domain.SlideUpdateParams) (*domain.Slide, error)
	UpdateOrder(ctx context.Context, presentationID, slideID uuid.UUID, order int) error
	ShiftOrdersAfter(ctx context.Context, presentationID uuid.UUID, order int) (int64, error)
	Delete(ctx context.Context, presentationID, slideID uuid.UUID) (int, error)
}

type presentationRepo interface {
	GetByID(ctx context.Context, userID, presentationID uuid.UUID) (*domain.Presentation, error)
	Touch(ctx context.Context, userID, presentationID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTitleLength   = 200
	MaxContentLength = 20000
	MaxURLLength     = 2048
)

// Service provides slide operations.
type Service struct {
	slides        slideRepo
	presentations presentationRepo
	audit         auditLogger
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new Slide service.
func NewService(
	log *slog.Logger,
	slides slideRepo,
	presentations presentationRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		slides:        slides,
		presentations: presentations,
		audit:         audit,
		tx:            tx,
		log:           log.With("service", "slide"),
	}
}

// owned fails with ErrNotFound unless the presentation belongs to userID.
func (s *Service) owned(ctx context.Context, userID, presentationID uuid.UUID) error {
	_, err := s.presentations.GetByID(ctx, userID, presentationID)
	return err
}
