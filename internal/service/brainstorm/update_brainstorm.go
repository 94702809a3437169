package brainstorm

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// UpdateBrainstorm applies a partial update to a brainstorm of the current user.
func (s *Service) UpdateBrainstorm(ctx context.Context, input UpdateBrainstormInput) (*domain.Brainstorm, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.BrainstormUpdateParams{Content: input.Content}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed // "" clears
	}
	if input.Tags != nil {
		tags := normalizeTags(*input.Tags)
		params.Tags = &tags
	}

	var updated *domain.Brainstorm
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.brainstorms.GetByID(txCtx, userID, input.BrainstormID)
		if getErr != nil {
			return fmt.Errorf("get brainstorm: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.brainstorms.Update(txCtx, userID, input.BrainstormID, params)
		if updateErr != nil {
			return fmt.Errorf("update brainstorm: %w", updateErr)
		}

		changes := buildBrainstormChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeBrainstorm,
				EntityID:   &input.BrainstormID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "brainstorm updated",
		slog.String("user_id", userID.String()),
		slog.String("brainstorm_id", input.BrainstormID.String()),
	)

	return updated, nil
}

// buildBrainstormChanges returns only changed fields for audit. Content is
// recorded as changed without its text.
func buildBrainstormChanges(old, updated *domain.Brainstorm) map[string]any {
	changes := make(map[string]any)
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if deref(old.Description) != deref(updated.Description) {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if old.Content != updated.Content {
		changes["content"] = map[string]any{"changed": true}
	}
	if !slices.Equal(old.Tags, updated.Tags) {
		changes["tags"] = map[string]any{"old": old.Tags, "new": updated.Tags}
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
