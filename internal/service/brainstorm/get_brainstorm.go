package brainstorm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// GetBrainstorm returns one brainstorm of the current user.
func (s *Service) GetBrainstorm(ctx context.Context, brainstormID uuid.UUID) (*domain.Brainstorm, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.brainstorms.GetByID(ctx, userID, brainstormID)
	if err != nil {
		return nil, fmt.Errorf("get brainstorm: %w", err)
	}
	return b, nil
}

// ListBrainstorms returns the current user's brainstorms, most recently updated first.
func (s *Service) ListBrainstorms(ctx context.Context) ([]domain.Brainstorm, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.brainstorms.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list brainstorms: %w", err)
	}
	return list, nil
}

// SearchBrainstorms matches query against title, description and content.
// A blank query lists everything.
func (s *Service) SearchBrainstorms(ctx context.Context, query string) ([]domain.Brainstorm, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListBrainstorms(ctx)
	}

	list, err := s.brainstorms.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search brainstorms: %w", err)
	}
	return list, nil
}
