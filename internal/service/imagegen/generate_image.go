package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/metrics"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// GenerateImage enhances the prompt, tries the primary then the fallback
// model, and records the first URL in the image library. A library failure
// is logged and reported through SavedToLibrary only.
func (s *Service) GenerateImage(ctx context.Context, input GenerateImageInput) (*GenerateImageResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.images.HasCredential() {
		return nil, fmt.Errorf("%w: image credential not configured", domain.ErrImageGeneration)
	}

	style := input.style()
	size := input.size(s.models.DefaultSize)
	enhanced := EnhancePrompt(input.Prompt, style)

	urls, model, err := s.generate(ctx, enhanced, size.String())
	if err != nil {
		return nil, err
	}

	result := &GenerateImageResult{URLs: urls, Model: model}

	if err := s.saveToLibrary(ctx, userID, urls[0], input.Prompt, style, model); err != nil {
		s.log.WarnContext(ctx, "image generated but not saved to library",
			slog.String("user_id", userID.String()),
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
	} else {
		result.SavedToLibrary = true
	}

	s.log.InfoContext(ctx, "image generated",
		slog.String("user_id", userID.String()),
		slog.String("model", model),
		slog.String("style", style.String()),
		slog.Bool("saved_to_library", result.SavedToLibrary),
	)

	return result, nil
}

func (s *Service) generate(ctx context.Context, prompt, size string) ([]string, string, error) {
	var errs []error
	for _, model := range s.candidateModels() {
		urls, err := s.images.Generate(ctx, model, prompt, size)
		if err == nil && len(urls) > 0 {
			metrics.ImageGenerationTotal.WithLabelValues(model, "ok").Inc()
			return urls, model, nil
		}
		if err == nil {
			err = errors.New("no image returned")
		}
		metrics.ImageGenerationTotal.WithLabelValues(model, "error").Inc()
		s.log.WarnContext(ctx, "image model failed",
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
		errs = append(errs, fmt.Errorf("%s: %w", model, err))
	}
	return nil, "", fmt.Errorf("%w: %w", domain.ErrImageGeneration, errors.Join(errs...))
}

func (s *Service) candidateModels() []string {
	models := make([]string, 0, 2)
	for _, m := range []string{s.models.Primary, s.models.Fallback} {
		m = strings.TrimSpace(m)
		if m != "" && (len(models) == 0 || models[0] != m) {
			models = append(models, m)
		}
	}
	return models
}

func (s *Service) saveToLibrary(ctx context.Context, userID uuid.UUID, url, prompt string, style domain.ImageStyle, model string) error {
	_, err := s.library.Create(ctxutil.Detach(ctx), userID, &domain.ImageLibraryEntry{
		URL:         url,
		Prompt:      strings.TrimSpace(prompt),
		Style:       style.String(),
		AIModel:     model,
		Tags:        ExtractTags(prompt),
		IsGenerated: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLibrarySave, err)
	}
	return nil
}
