package contextprofile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// GetProfile returns one profile of the current user.
func (s *Service) GetProfile(ctx context.Context, profileID uuid.UUID) (*domain.ContextProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID, profileID)
	if err != nil {
		return nil, fmt.Errorf("get context profile: %w", err)
	}
	return p, nil
}

// ListProfiles returns the current user's profiles, most recently updated first.
func (s *Service) ListProfiles(ctx context.Context) ([]domain.ContextProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.profiles.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list context profiles: %w", err)
	}
	return list, nil
}

// SearchProfiles matches query against the descriptive fields of a profile.
func (s *Service) SearchProfiles(ctx context.Context, query string) ([]domain.ContextProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListProfiles(ctx)
	}

	list, err := s.profiles.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search context profiles: %w", err)
	}
	return list, nil
}
