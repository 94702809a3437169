package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetOrCreateByEmail(ctx context.Context, email, name string) (*domain.User, error)
}

// DemoUser identifies the single account every request runs as.
type DemoUser struct {
	Email string
	Name  string
}

// Service implements user provisioning and lookup.
type Service struct {
	log   *slog.Logger
	users userRepo
	demo  DemoUser
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, demo DemoUser) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		demo:  demo,
	}
}
