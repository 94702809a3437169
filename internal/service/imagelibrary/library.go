package imagelibrary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/imagegen"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// SaveImage adds an image to the current user's library.
func (s *Service) SaveImage(ctx context.Context, input SaveImageInput) (*domain.ImageLibraryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	prompt := strings.TrimSpace(input.Prompt)
	tags := normalizeTags(input.Tags)
	if len(tags) == 0 {
		tags = imagegen.ExtractTags(prompt)
	}

	var created *domain.ImageLibraryEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.library.Create(txCtx, userID, &domain.ImageLibraryEntry{
			URL:         strings.TrimSpace(input.URL),
			Prompt:      prompt,
			Style:       input.Style,
			AIModel:     strings.TrimSpace(input.AIModel),
			Tags:        tags,
			IsGenerated: input.IsGenerated,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrLibrarySave, err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeImage,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"tags": map[string]any{"new": tags},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "image saved to library",
		slog.String("user_id", userID.String()),
		slog.String("image_id", created.ID.String()),
		slog.Int("tags", len(tags)),
	)
	return created, nil
}

// ListImages returns the current user's images matching filter, newest first.
func (s *Service) ListImages(ctx context.Context, filter domain.ImageLibraryFilter) ([]domain.ImageLibraryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter.Search = strings.TrimSpace(filter.Search)
	filter.Tags = normalizeTags(filter.Tags)

	list, err := s.library.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return list, nil
}

// UpdateTags replaces an image's tags.
func (s *Service) UpdateTags(ctx context.Context, input UpdateTagsInput) (*domain.ImageLibraryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tags := normalizeTags(input.Tags)

	var updated *domain.ImageLibraryEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.library.UpdateTags(txCtx, userID, input.ImageID, tags)
		if err != nil {
			return fmt.Errorf("update image tags: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeImage,
			EntityID:   &input.ImageID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"tags": map[string]any{"new": tags},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteImage removes an image from the library.
func (s *Service) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if imageID == uuid.Nil {
		return domain.NewValidationError("image_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.library.Delete(txCtx, userID, imageID); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeImage,
			EntityID:   &imageID,
			Action:     domain.AuditActionDelete,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "image deleted",
		slog.String("user_id", userID.String()),
		slog.String("image_id", imageID.String()),
	)
	return nil
}

// Stats aggregates the current user's library; recent covers the last 7 days.
func (s *Service) Stats(ctx context.Context) (*domain.ImageLibraryStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.library.Stats(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("image library stats: %w", err)
	}
	return stats, nil
}
