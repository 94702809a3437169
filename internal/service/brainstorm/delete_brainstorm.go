package brainstorm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// DeleteBrainstorm removes a brainstorm and every presentation generated from it.
func (s *Service) DeleteBrainstorm(ctx context.Context, brainstormID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if brainstormID == uuid.Nil {
		return domain.NewValidationError("brainstorm_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.brainstorms.GetByID(txCtx, userID, brainstormID)
		if getErr != nil {
			return fmt.Errorf("get brainstorm: %w", getErr)
		}

		if delErr := s.brainstorms.Delete(txCtx, userID, brainstormID); delErr != nil {
			return fmt.Errorf("delete brainstorm: %w", delErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBrainstorm,
			EntityID:   &brainstormID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": old.Title},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "brainstorm deleted",
		slog.String("user_id", userID.String()),
		slog.String("brainstorm_id", brainstormID.String()),
	)
	return nil
}
