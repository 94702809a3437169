package slide

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// UpdateSlide applies a partial update to a slide, including the canvas and
// theme snapshots, and bumps the presentation's updated_at.
func (s *Service) UpdateSlide(ctx context.Context, input UpdateSlideInput) (*domain.Slide, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.SlideUpdateParams{
		Template:         input.Template,
		Title:            trimPtr(input.Title),
		Content:          trimPtr(input.Content),
		NarrationSegment: trimPtr(input.NarrationSegment),
		ImageURL:         trimPtr(input.ImageURL),
		CanvasData:       input.CanvasData,
		ThemeData:        input.ThemeData,
	}

	var updated *domain.Slide
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owned(txCtx, userID, input.PresentationID); err != nil {
			return fmt.Errorf("get presentation: %w", err)
		}

		old, err := s.slides.GetByID(txCtx, input.PresentationID, input.SlideID)
		if err != nil {
			return fmt.Errorf("get slide: %w", err)
		}

		updated, err = s.slides.Update(txCtx, input.PresentationID, input.SlideID, params)
		if err != nil {
			return fmt.Errorf("update slide: %w", err)
		}

		if err := s.presentations.Touch(txCtx, userID, input.PresentationID); err != nil {
			return fmt.Errorf("touch presentation: %w", err)
		}

		changes := buildSlideChanges(old, updated)
		if len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeSlide,
				EntityID:   &input.SlideID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "slide updated",
		slog.String("user_id", userID.String()),
		slog.String("slide_id", input.SlideID.String()),
	)
	return updated, nil
}

// buildSlideChanges records old/new for short fields; long text and blobs
// only record that they changed.
func buildSlideChanges(old, updated *domain.Slide) map[string]any {
	changes := make(map[string]any)
	if old.Template != updated.Template {
		changes["template"] = map[string]any{"old": old.Template.String(), "new": updated.Template.String()}
	}
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.Content != updated.Content {
		changes["content"] = map[string]any{"changed": true}
	}
	if deref(old.NarrationSegment) != deref(updated.NarrationSegment) {
		changes["narration_segment"] = map[string]any{"changed": true}
	}
	if deref(old.ImageURL) != deref(updated.ImageURL) {
		changes["image_url"] = map[string]any{"old": deref(old.ImageURL), "new": deref(updated.ImageURL)}
	}
	if !bytes.Equal(old.CanvasData, updated.CanvasData) {
		changes["canvas_data"] = map[string]any{"changed": true}
	}
	if !bytes.Equal(old.ThemeData, updated.ThemeData) {
		changes["theme_data"] = map[string]any{"changed": true}
	}
	return changes
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
