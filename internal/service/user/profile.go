package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// EnsureDemoUser returns the demo account, creating it on first start.
// Safe to call from several instances at once.
func (s *Service) EnsureDemoUser(ctx context.Context) (*domain.User, error) {
	if err := s.demo.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(s.demo.Email))
	user, err := s.users.GetOrCreateByEmail(ctx, email, strings.TrimSpace(s.demo.Name))
	if err != nil {
		return nil, fmt.Errorf("user.EnsureDemoUser: %w", err)
	}

	s.log.InfoContext(ctx, "demo user ready",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email))

	return user, nil
}

// GetCurrentUser returns the user bound to the request context.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetCurrentUser: %w", err)
	}

	return user, nil
}
