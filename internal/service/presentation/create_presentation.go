package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// CreatePresentation creates a presentation without slides. The brainstorm and
// context profile must belong to the current user.
func (s *Service) CreatePresentation(ctx context.Context, input CreatePresentationInput) (*domain.Presentation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var narration *string
	if input.Narration != nil && strings.TrimSpace(*input.Narration) != "" {
		narration = input.Narration
	}

	var created *domain.Presentation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkSources(txCtx, userID, input.BrainstormID, input.ContextProfileID); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.insert(txCtx, userID, &domain.Presentation{
			BrainstormID:     input.BrainstormID,
			ContextProfileID: input.ContextProfileID,
			Title:            strings.TrimSpace(input.Title),
			ContentAngle:     input.ContentAngle,
			HookAngle:        input.HookAngle,
			Narration:        narration,
		})
		return createErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "presentation created",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", created.ID.String()),
	)
	return created, nil
}

// checkSources verifies ownership of both sources.
func (s *Service) checkSources(ctx context.Context, userID, brainstormID, profileID uuid.UUID) error {
	if _, err := s.brainstorms.GetByID(ctx, userID, brainstormID); err != nil {
		return fmt.Errorf("get brainstorm: %w", err)
	}
	if _, err := s.profiles.GetByID(ctx, userID, profileID); err != nil {
		return fmt.Errorf("get context profile: %w", err)
	}
	return nil
}

// insert creates the presentation row and its audit record. ctx must carry a transaction.
func (s *Service) insert(ctx context.Context, userID uuid.UUID, p *domain.Presentation) (*domain.Presentation, error) {
	created, err := s.presentations.Create(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypePresentation,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"title":         map[string]any{"new": created.Title},
			"content_angle": map[string]any{"new": created.ContentAngle.String()},
		},
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}
	return created, nil
}
