package imagegen

import (
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

const maxPromptLength = 4000

// GenerateImageInput holds the parameters for generating an image.
// Empty Style means realistic; empty Size means the configured default,
// or square when none is configured.
type GenerateImageInput struct {
	Prompt string
	Style  domain.ImageStyle
	Size   domain.ImageSize
}

// Validate checks all fields and collects all errors.
func (i GenerateImageInput) Validate() error {
	var errs []domain.FieldError

	prompt := strings.TrimSpace(i.Prompt)
	if prompt == "" {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "required"})
	}
	if len(prompt) > maxPromptLength {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "max 4000 characters"})
	}
	if i.Style != "" && !i.Style.IsValid() {
		errs = append(errs, domain.FieldError{Field: "style", Message: "invalid value"})
	}
	if i.Size != "" && !i.Size.IsValid() {
		errs = append(errs, domain.FieldError{Field: "size", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i GenerateImageInput) style() domain.ImageStyle {
	if i.Style == "" {
		return domain.ImageStyleRealistic
	}
	return i.Style
}

func (i GenerateImageInput) size(def domain.ImageSize) domain.ImageSize {
	switch {
	case i.Size != "":
		return i.Size
	case def != "":
		return def
	}
	return domain.ImageSizeSquare
}
