package presentation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// GetPresentation returns a presentation with its brainstorm, context profile
// and slides in display order.
func (s *Service) GetPresentation(ctx context.Context, presentationID uuid.UUID) (*domain.PresentationWithDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.presentations.GetByID(ctx, userID, presentationID)
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	return s.details(ctx, userID, p)
}

func (s *Service) details(ctx context.Context, userID uuid.UUID, p *domain.Presentation) (*domain.PresentationWithDetails, error) {
	b, err := s.brainstorms.GetByID(ctx, userID, p.BrainstormID)
	if err != nil {
		return nil, fmt.Errorf("get brainstorm: %w", err)
	}
	cp, err := s.profiles.GetByID(ctx, userID, p.ContextProfileID)
	if err != nil {
		return nil, fmt.Errorf("get context profile: %w", err)
	}
	slides, err := s.slides.ListByPresentation(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}

	return &domain.PresentationWithDetails{
		Presentation:   *p,
		Brainstorm:     *b,
		ContextProfile: *cp,
		Slides:         slides,
	}, nil
}

// ListPresentations returns the current user's presentations, most recently updated first.
func (s *Service) ListPresentations(ctx context.Context) ([]domain.Presentation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.presentations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	return list, nil
}

// SearchPresentations matches query against the presentation title and the
// titles of its brainstorm and context profile.
func (s *Service) SearchPresentations(ctx context.Context, query string) ([]domain.Presentation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListPresentations(ctx)
	}

	list, err := s.presentations.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search presentations: %w", err)
	}
	return list, nil
}
