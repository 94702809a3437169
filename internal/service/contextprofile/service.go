// Package contextprofile manages the audience, objectives and tone records
// that steer presentation generation.
package contextprofile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

type profileRepo interface {
	Create(ctx context.Context, userID uuid.UUID, p *domain.ContextProfile) (*domain.ContextProfile, error)
	GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.ContextProfile, error)
	Update(ctx context.Context, userID, profileID uuid.UUID, params domain.ContextProfileUpdateParams) (*domain.ContextProfile, error)
	Delete(ctx context.Context, userID, profileID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContextProfile, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.ContextProfile, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength        = 200
	MaxFieldLength       = 2000
	MaxPreferencesLength = 16 * 1024
)

// Defaults applied by CreateDefaultProfile.
const (
	DefaultProfileName    = "Quick Start Context"
	DefaultBusinessType   = "General"
	DefaultAudience       = "General audience"
	DefaultBrandTone      = "professional"
	DefaultObjective      = "Create engaging presentation"
	defaultPreferredStyle = "modern"
)

// Service provides context profile operations.
type Service struct {
	profiles profileRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new ContextProfile service.
func NewService(log *slog.Logger, profiles profileRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		profiles: profiles,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "contextprofile"),
	}
}
