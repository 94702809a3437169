package slide

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// CreateSlide adds a slide to a presentation the current user owns.
func (s *Service) CreateSlide(ctx context.Context, input CreateSlideInput) (*domain.Slide, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Slide
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owned(txCtx, userID, input.PresentationID); err != nil {
			return fmt.Errorf("get presentation: %w", err)
		}

		var order int
		if input.Order != nil {
			order = *input.Order
		} else {
			next, err := s.slides.NextOrder(txCtx, input.PresentationID)
			if err != nil {
				return fmt.Errorf("next slide order: %w", err)
			}
			order = next
		}

		var err error
		created, err = s.slides.Create(txCtx, &domain.Slide{
			PresentationID:   input.PresentationID,
			Order:            order,
			Template:         input.Template,
			Title:            strings.TrimSpace(input.Title),
			Content:          strings.TrimSpace(input.Content),
			NarrationSegment: trimOrNil(input.NarrationSegment),
			ImageURL:         trimOrNil(input.ImageURL),
			CanvasData:       input.CanvasData,
			ThemeData:        input.ThemeData,
		})
		if err != nil {
			return fmt.Errorf("create slide: %w", err)
		}

		if err := s.presentations.Touch(txCtx, userID, input.PresentationID); err != nil {
			return fmt.Errorf("touch presentation: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSlide,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"presentation_id": map[string]any{"new": input.PresentationID.String()},
				"order":           map[string]any{"new": order},
				"template":        map[string]any{"new": input.Template.String()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "slide created",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", input.PresentationID.String()),
		slog.String("slide_id", created.ID.String()),
		slog.Int("order", created.Order),
	)
	return created, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
