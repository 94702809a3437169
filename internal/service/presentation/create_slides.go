package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// CreateWithSlides stores the drafts as slides 0..n-1 of the presentation.
// The creates run concurrently and the first failure fails the whole call.
// Slides that were already written are not removed.
// TODO: run the creates sequentially inside one transaction to close the
// partial-write gap.
func (s *Service) CreateWithSlides(ctx context.Context, presentationID uuid.UUID, drafts []domain.AIGeneratedSlide) ([]domain.Slide, error) {
	out := make([]domain.Slide, len(drafts))
	var written atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range drafts {
		g.Go(func() error {
			var narration *string
			if d.NarrationSegment != "" {
				n := d.NarrationSegment
				narration = &n
			}

			created, err := s.slides.Create(gctx, &domain.Slide{
				PresentationID:   presentationID,
				Order:            i,
				Template:         d.Template,
				Title:            d.Title,
				Content:          d.Content,
				NarrationSegment: narration,
				ImageURL:         d.ImageURL,
			})
			if err != nil {
				return fmt.Errorf("create slide %d: %w", i, err)
			}
			written.Add(1)
			out[i] = *created
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.WarnContext(ctx, "slide batch failed, written slides are kept",
			slog.String("presentation_id", presentationID.String()),
			slog.Int("written", int(written.Load())),
			slog.Int("requested", len(drafts)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return out, nil
}
