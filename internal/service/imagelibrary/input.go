package imagelibrary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// SaveImageInput describes an image added to the library by hand.
// Empty Tags are derived from the prompt.
type SaveImageInput struct {
	URL         string
	Prompt      string
	Style       string
	AIModel     string
	Tags        []string
	IsGenerated bool
}

// Validate checks all fields and collects all errors.
func (i SaveImageInput) Validate() error {
	var errs []domain.FieldError

	url := strings.TrimSpace(i.URL)
	switch {
	case url == "":
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	case !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "data:image/"):
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an http(s) or data:image URL"})
	case len(url) > MaxURLLength:
		errs = append(errs, domain.FieldError{Field: "url", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Prompt) > MaxPromptLength {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: fmt.Sprintf("max %d characters", MaxPromptLength)})
	}
	if i.Style != "" && !domain.ImageStyle(i.Style).IsValid() {
		errs = append(errs, domain.FieldError{Field: "style", Message: "invalid value"})
	}
	errs = validateTags(errs, i.Tags)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTagsInput replaces the tags of a library image.
type UpdateTagsInput struct {
	ImageID uuid.UUID
	Tags    []string
}

// Validate checks all fields and collects all errors.
func (i UpdateTagsInput) Validate() error {
	var errs []domain.FieldError

	if i.ImageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "image_id", Message: "required"})
	}
	errs = validateTags(errs, i.Tags)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTags(errs []domain.FieldError, tags []string) []domain.FieldError {
	if len(tags) > MaxTags {
		return append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", MaxTags)})
	}
	for idx, tag := range tags {
		if utf8.RuneCountInString(strings.TrimSpace(tag)) > MaxTagLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("tags[%d]", idx), Message: fmt.Sprintf("max %d characters", MaxTagLength)})
		}
	}
	return errs
}

// normalizeTags lowercases, trims, drops empties and de-duplicates in order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
