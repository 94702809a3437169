package presentation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// DeletePresentation removes a presentation together with all of its slides.
func (s *Service) DeletePresentation(ctx context.Context, presentationID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if presentationID == uuid.Nil {
		return domain.NewValidationError("presentation_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.presentations.Delete(txCtx, userID, presentationID); delErr != nil {
			return fmt.Errorf("delete presentation: %w", delErr)
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypePresentation,
			EntityID:   &presentationID,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "presentation deleted",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", presentationID.String()),
	)
	return nil
}
