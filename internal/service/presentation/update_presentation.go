package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// UpdatePresentation applies a partial update to a presentation.
func (s *Service) UpdatePresentation(ctx context.Context, input UpdatePresentationInput) (*domain.Presentation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PresentationUpdateParams{
		ContentAngle: input.ContentAngle,
		HookAngle:    input.HookAngle,
	}
	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		params.Title = &t
	}
	if input.Narration != nil {
		n := strings.TrimSpace(*input.Narration)
		params.Narration = &n
	}

	var updated *domain.Presentation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.presentations.GetByID(txCtx, userID, input.PresentationID)
		if getErr != nil {
			return fmt.Errorf("get presentation: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.presentations.Update(txCtx, userID, input.PresentationID, params)
		if updateErr != nil {
			return fmt.Errorf("update presentation: %w", updateErr)
		}

		changes := buildPresentationChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypePresentation,
				EntityID:   &input.PresentationID,
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

	s.log.InfoContext(ctx, "presentation updated",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", input.PresentationID.String()),
	)
	return updated, nil
}

func buildPresentationChanges(old, updated *domain.Presentation) map[string]any {
	changes := make(map[string]any)
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.ContentAngle != updated.ContentAngle {
		changes["content_angle"] = map[string]any{"old": old.ContentAngle.String(), "new": updated.ContentAngle.String()}
	}
	if hookString(old.HookAngle) != hookString(updated.HookAngle) {
		changes["hook_angle"] = map[string]any{"old": hookString(old.HookAngle), "new": hookString(updated.HookAngle)}
	}
	if (old.Narration == nil) != (updated.Narration == nil) ||
		(old.Narration != nil && *old.Narration != *updated.Narration) {
		changes["narration"] = map[string]any{"changed": true}
	}
	return changes
}

func hookString(h *domain.HookAngle) string {
	if h == nil {
		return ""
	}
	return h.String()
}
