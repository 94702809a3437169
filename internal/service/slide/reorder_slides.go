package slide

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// ReorderSlides gives each listed slide the order of its index. The list must
// name every slide of the presentation exactly once. Orders are unique per
// presentation but checked at commit, so intermediate swaps are fine.
func (s *Service) ReorderSlides(ctx context.Context, input ReorderSlidesInput) ([]domain.Slide, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		reordered []domain.Slide
		moved     int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owned(txCtx, userID, input.PresentationID); err != nil {
			return fmt.Errorf("get presentation: %w", err)
		}

		current, err := s.slides.ListByPresentation(txCtx, input.PresentationID)
		if err != nil {
			return fmt.Errorf("list slides: %w", err)
		}
		if err := checkComplete(current, input.SlideIDs); err != nil {
			return err
		}

		orders := make(map[uuid.UUID]int, len(current))
		for _, sl := range current {
			orders[sl.ID] = sl.Order
		}

		for i, id := range input.SlideIDs {
			if orders[id] == i {
				continue
			}
			if err := s.slides.UpdateOrder(txCtx, input.PresentationID, id, i); err != nil {
				return fmt.Errorf("update slide order: %w", err)
			}
			moved++
		}

		if moved == 0 {
			reordered = current
			return nil
		}

		if err := s.presentations.Touch(txCtx, userID, input.PresentationID); err != nil {
			return fmt.Errorf("touch presentation: %w", err)
		}

		ids := make([]string, len(input.SlideIDs))
		for i, id := range input.SlideIDs {
			ids[i] = id.String()
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypePresentation,
			EntityID:   &input.PresentationID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"slide_order": map[string]any{"new": ids},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		reordered, err = s.slides.ListByPresentation(txCtx, input.PresentationID)
		if err != nil {
			return fmt.Errorf("list slides: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "slides reordered",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", input.PresentationID.String()),
		slog.Int("moved", moved),
	)
	return reordered, nil
}

// checkComplete verifies ids is a permutation of the presentation's slides.
func checkComplete(current []domain.Slide, ids []uuid.UUID) error {
	if len(ids) != len(current) {
		return domain.NewValidationError("slide_ids",
			fmt.Sprintf("expected %d slides, got %d", len(current), len(ids)))
	}
	known := make(map[uuid.UUID]struct{}, len(current))
	for _, sl := range current {
		known[sl.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
		}
	}
	return nil
}
