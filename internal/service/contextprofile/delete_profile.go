package contextprofile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// DeleteProfile removes a profile and the presentations built on it.
func (s *Service) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if profileID == uuid.Nil {
		return domain.NewValidationError("profile_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.profiles.Delete(txCtx, userID, profileID); delErr != nil {
			return fmt.Errorf("delete context profile: %w", delErr)
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeContextProfile,
			EntityID:   &profileID,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "context profile deleted",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", profileID.String()),
	)
	return nil
}
