package slide

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// DeleteSlide removes a slide and moves every later slide up by one, so
// orders stay contiguous from 0.
func (s *Service) DeleteSlide(ctx context.Context, presentationID, slideID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if errs := validateIDs(nil, presentationID, slideID); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	var shifted int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owned(txCtx, userID, presentationID); err != nil {
			return fmt.Errorf("get presentation: %w", err)
		}

		order, err := s.slides.Delete(txCtx, presentationID, slideID)
		if err != nil {
			return fmt.Errorf("delete slide: %w", err)
		}

		shifted, err = s.slides.ShiftOrdersAfter(txCtx, presentationID, order)
		if err != nil {
			return fmt.Errorf("reindex slides: %w", err)
		}

		if err := s.presentations.Touch(txCtx, userID, presentationID); err != nil {
			return fmt.Errorf("touch presentation: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSlide,
			EntityID:   &slideID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"order": map[string]any{"old": order},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "slide deleted",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", presentationID.String()),
		slog.String("slide_id", slideID.String()),
		slog.Int64("reindexed", shifted),
	)
	return nil
}
