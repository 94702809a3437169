package slide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// CreateSlideInput holds the parameters for adding a slide.
// A nil Order appends the slide after the last one.
type CreateSlideInput struct {
	PresentationID   uuid.UUID
	Order            *int
	Template         domain.SlideTemplate
	Title            string
	Content          string
	NarrationSegment *string
	ImageURL         *string
	CanvasData       json.RawMessage
	ThemeData        json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreateSlideInput) Validate() error {
	var errs []domain.FieldError

	if i.PresentationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "presentation_id", Message: "required"})
	}
	if i.Order != nil && *i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be >= 0"})
	}
	if !i.Template.IsValid() {
		errs = append(errs, domain.FieldError{Field: "template", Message: "invalid value"})
	}
	errs = validateText(errs, "title", i.Title, MaxTitleLength)
	errs = validateText(errs, "content", i.Content, MaxContentLength)
	if i.ImageURL != nil {
		errs = validateText(errs, "image_url", *i.ImageURL, MaxURLLength)
	}
	errs = validateBlob(errs, "canvas_data", i.CanvasData)
	errs = validateBlob(errs, "theme_data", i.ThemeData)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSlideInput holds a partial slide update. Nil fields and empty blobs
// are left unchanged.
type UpdateSlideInput struct {
	PresentationID   uuid.UUID
	SlideID          uuid.UUID
	Template         *domain.SlideTemplate
	Title            *string
	Content          *string
	NarrationSegment *string // ptr("") = clear
	ImageURL         *string // ptr("") = clear
	CanvasData       json.RawMessage
	ThemeData        json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i UpdateSlideInput) Validate() error {
	var errs []domain.FieldError

	errs = validateIDs(errs, i.PresentationID, i.SlideID)
	if i.Template == nil && i.Title == nil && i.Content == nil && i.NarrationSegment == nil &&
		i.ImageURL == nil && len(i.CanvasData) == 0 && len(i.ThemeData) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Template != nil && !i.Template.IsValid() {
		errs = append(errs, domain.FieldError{Field: "template", Message: "invalid value"})
	}
	if i.Title != nil {
		errs = validateText(errs, "title", *i.Title, MaxTitleLength)
	}
	if i.Content != nil {
		errs = validateText(errs, "content", *i.Content, MaxContentLength)
	}
	if i.ImageURL != nil {
		errs = validateText(errs, "image_url", *i.ImageURL, MaxURLLength)
	}
	errs = validateBlob(errs, "canvas_data", i.CanvasData)
	errs = validateBlob(errs, "theme_data", i.ThemeData)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderSlidesInput lists every slide of a presentation in its new order.
type ReorderSlidesInput struct {
	PresentationID uuid.UUID
	SlideIDs       []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderSlidesInput) Validate() error {
	var errs []domain.FieldError

	if i.PresentationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "presentation_id", Message: "required"})
	}
	if len(i.SlideIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "slide_ids", Message: "required"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.SlideIDs))
	for idx, id := range i.SlideIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("slide_ids[%d]", idx), Message: "duplicate id"})
			continue
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateIDs(errs []domain.FieldError, presentationID, slideID uuid.UUID) []domain.FieldError {
	if presentationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "presentation_id", Message: "required"})
	}
	if slideID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "slide_id", Message: "required"})
	}
	return errs
}

func validateText(errs []domain.FieldError, field, value string, max int) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", max)})
	}
	return errs
}

// validateBlob accepts an absent blob or a JSON object.
func validateBlob(errs []domain.FieldError, field string, blob json.RawMessage) []domain.FieldError {
	if len(blob) == 0 {
		return errs
	}
	trimmed := bytes.TrimSpace(blob)
	if !json.Valid(trimmed) || len(trimmed) == 0 || trimmed[0] != '{' {
		return append(errs, domain.FieldError{Field: field, Message: "must be a JSON object"})
	}
	return errs
}
