package brainstorm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// CreateBrainstorm creates a new brainstorm for the current user.
func (s *Service) CreateBrainstorm(ctx context.Context, input CreateBrainstormInput) (*domain.Brainstorm, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)

	var created *domain.Brainstorm
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.brainstorms.Create(txCtx, userID, &domain.Brainstorm{
			Title:       title,
			Description: trimOrNil(input.Description),
			Content:     input.Content,
			Tags:        normalizeTags(input.Tags),
		})
		if createErr != nil {
			return fmt.Errorf("create brainstorm: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBrainstorm,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title": map[string]any{"new": title},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "brainstorm created",
		slog.String("user_id", userID.String()),
		slog.String("brainstorm_id", created.ID.String()),
	)

	return created, nil
}
