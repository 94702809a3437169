package slide

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// GetSlide returns one slide of a presentation the current user owns.
func (s *Service) GetSlide(ctx context.Context, presentationID, slideID uuid.UUID) (*domain.Slide, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.owned(ctx, userID, presentationID); err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}

	sl, err := s.slides.GetByID(ctx, presentationID, slideID)
	if err != nil {
		return nil, fmt.Errorf("get slide: %w", err)
	}
	return sl, nil
}

// ListSlides returns the slides of a presentation in display order.
func (s *Service) ListSlides(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.owned(ctx, userID, presentationID); err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}

	list, err := s.slides.ListByPresentation(ctx, presentationID)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	return list, nil
}
