// Package presentation owns presentations and the generate flows that
// turn a brainstorm and a context profile into a persisted slide deck.
package presentation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/brainstorm"
	"github.com/heartmarshall/fastslide-backend/internal/service/contextprofile"
	"github.com/heartmarshall/fastslide-backend/internal/service/generation"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type presentationRepo interface {
	Create(ctx context.Context, userID uuid.UUID, p *domain.Presentation) (*domain.Presentation, error)
	GetByID(ctx context.Context, userID, presentationID uuid.UUID) (*domain.Presentation, error)
	Update(ctx context.Context, userID, presentationID uuid.UUID, params domain.PresentationUpdateParams) (*domain.Presentation, error)
	Delete(ctx context.Context, userID, presentationID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Presentation, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.Presentation, error)
}

type brainstormRepo interface {
	GetByID(ctx context.Context, userID, brainstormID uuid.UUID) (*domain.Brainstorm, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.ContextProfile, error)
}

type slideRepo interface {
	Create(ctx context.Context, s *domain.Slide) (*domain.Slide, error)
	ListByPresentation(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error)
}

type brainstormService interface {
	CreateBrainstorm(ctx context.Context, input brainstorm.CreateBrainstormInput) (*domain.Brainstorm, error)
}

type profileService interface {
	CreateDefaultProfile(ctx context.Context, input contextprofile.CreateDefaultInput) (*domain.ContextProfile, error)
}

type slideGenerator interface {
	GenerateSlides(ctx context.Context, input generation.GenerateSlidesInput) []domain.AIGeneratedSlide
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTitleLength = 200

	// Quick start derives the brainstorm title from the first line of content.
	quickStartTitleLength = 100
)

// Service provides presentation operations.
type Service struct {
	presentations presentationRepo
	brainstorms   brainstormRepo
	profiles      profileRepo
	slides        slideRepo
	brainstormSvc brainstormService
	profileSvc    profileService
	generator     slideGenerator
	audit         auditLogger
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new Presentation service.
func NewService(
	log *slog.Logger,
	presentations presentationRepo,
	brainstorms brainstormRepo,
	profiles profileRepo,
	slides slideRepo,
	brainstormSvc brainstormService,
	profileSvc profileService,
	generator slideGenerator,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		presentations: presentations,
		brainstorms:   brainstorms,
		profiles:      profiles,
		slides:        slides,
		brainstormSvc: brainstormSvc,
		profileSvc:    profileSvc,
		generator:     generator,
		audit:         audit,
		tx:            tx,
		log:           log.With("service", "presentation"),
	}
}
