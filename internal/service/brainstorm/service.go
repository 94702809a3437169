package brainstorm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

type brainstormRepo interface {
	Create(ctx context.Context, userID uuid.UUID, b *domain.Brainstorm) (*domain.Brainstorm, error)
	GetByID(ctx context.Context, userID, brainstormID uuid.UUID) (*domain.Brainstorm, error)
	Update(ctx context.Context, userID, brainstormID uuid.UUID, params domain.BrainstormUpdateParams) (*domain.Brainstorm, error)
	Delete(ctx context.Context, userID, brainstormID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Brainstorm, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.Brainstorm, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxContentLength     = 50000
	MaxTags              = 20
	MaxTagLength         = 50
)

// Service provides brainstorm management operations.
type Service struct {
	brainstorms brainstormRepo
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Brainstorm service.
func NewService(
	log *slog.Logger,
	brainstorms brainstormRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		brainstorms: brainstorms,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "brainstorm"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// normalizeTags trims, drops empties and de-duplicates, keeping first occurrence.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
