package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/brainstorm"
	"github.com/heartmarshall/fastslide-backend/internal/service/contextprofile"
	"github.com/heartmarshall/fastslide-backend/internal/service/generation"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// GeneratePresentation drafts five slides from a brainstorm and a context
// profile, then persists the presentation and its slides. Slide drafting never
// fails; only persistence errors are returned.
func (s *Service) GeneratePresentation(ctx context.Context, input GeneratePresentationInput) (*domain.PresentationWithDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.brainstorms.GetByID(ctx, userID, input.BrainstormID)
	if err != nil {
		return nil, fmt.Errorf("get brainstorm: %w", err)
	}
	cp, err := s.profiles.GetByID(ctx, userID, input.ContextProfileID)
	if err != nil {
		return nil, fmt.Errorf("get context profile: %w", err)
	}

	drafts := s.generator.GenerateSlides(ctx, generation.GenerateSlidesInput{
		Brainstorm:     *b,
		ContextProfile: *cp,
		ContentAngle:   input.ContentAngle,
		HookAngle:      input.HookAngle,
	})

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = cutRunes(b.Title, MaxTitleLength)
	}

	var created *domain.Presentation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.insert(txCtx, userID, &domain.Presentation{
			BrainstormID:     b.ID,
			ContextProfileID: cp.ID,
			Title:            title,
			ContentAngle:     input.ContentAngle,
			HookAngle:        input.HookAngle,
		})
		return createErr
	})
	if err != nil {
		return nil, err
	}

	slides, err := s.CreateWithSlides(ctx, created.ID, drafts)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "presentation generated",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", created.ID.String()),
		slog.String("content_angle", input.ContentAngle.String()),
		slog.Int("slides", len(slides)),
	)

	return &domain.PresentationWithDetails{
		Presentation:   *created,
		Brainstorm:     *b,
		ContextProfile: *cp,
		Slides:         slides,
	}, nil
}

// QuickStart builds a whole presentation from raw text: it creates a brainstorm
// titled after the first line, a default context profile for the audience and
// a presentation over them, then drafts and stores the slides.
func (s *Service) QuickStart(ctx context.Context, input QuickStartInput) (*domain.PresentationWithDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)
	angle := input.contentAngle()

	var (
		b       *domain.Brainstorm
		cp      *domain.ContextProfile
		created *domain.Presentation
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		b, err = s.brainstormSvc.CreateBrainstorm(txCtx, brainstorm.CreateBrainstormInput{
			Title:   QuickStartTitle(content),
			Content: content,
		})
		if err != nil {
			return fmt.Errorf("create brainstorm: %w", err)
		}

		cp, err = s.profileSvc.CreateDefaultProfile(txCtx, contextprofile.CreateDefaultInput{
			Audience: input.Audience,
		})
		if err != nil {
			return fmt.Errorf("create context profile: %w", err)
		}

		created, err = s.insert(txCtx, userID, &domain.Presentation{
			BrainstormID:     b.ID,
			ContextProfileID: cp.ID,
			Title:            b.Title,
			ContentAngle:     angle,
			HookAngle:        input.HookAngle,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	drafts := s.generator.GenerateSlides(ctx, generation.GenerateSlidesInput{
		Brainstorm:     *b,
		ContextProfile: *cp,
		ContentAngle:   angle,
		HookAngle:      input.HookAngle,
	})

	slides, err := s.CreateWithSlides(ctx, created.ID, drafts)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "quick start presentation created",
		slog.String("user_id", userID.String()),
		slog.String("presentation_id", created.ID.String()),
		slog.String("content_angle", angle.String()),
	)

	return &domain.PresentationWithDetails{
		Presentation:   *created,
		Brainstorm:     *b,
		ContextProfile: *cp,
		Slides:         slides,
	}, nil
}

// QuickStartTitle is the first line of content cut to 100 characters, with
// "..." appended when the whole content is longer than that.
func QuickStartTitle(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	title := cutRunes(strings.TrimSpace(first), quickStartTitleLength)
	if len([]rune(content)) > quickStartTitleLength {
		title += "..."
	}
	return title
}

func cutRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
