package presentation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// CreatePresentationInput holds the parameters for creating an empty presentation.
type CreatePresentationInput struct {
	BrainstormID     uuid.UUID
	ContextProfileID uuid.UUID
	Title            string
	ContentAngle     domain.ContentAngle
	HookAngle        *domain.HookAngle
	Narration        *string
}

// Validate checks all fields and collects all errors.
func (i CreatePresentationInput) Validate() error {
	var errs []domain.FieldError

	errs = validateSources(errs, i.BrainstormID, i.ContextProfileID)
	errs = validateTitle(errs, i.Title)
	errs = validateAngles(errs, i.ContentAngle, i.HookAngle)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePresentationInput holds the parameters for updating a presentation.
type UpdatePresentationInput struct {
	PresentationID uuid.UUID
	Title          *string
	ContentAngle   *domain.ContentAngle
	HookAngle      *domain.HookAngle // ptr("") = clear
	Narration      *string           // ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdatePresentationInput) Validate() error {
	var errs []domain.FieldError

	if i.PresentationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "presentation_id", Message: "required"})
	}
	if i.Title == nil && i.ContentAngle == nil && i.HookAngle == nil && i.Narration == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.ContentAngle != nil && !i.ContentAngle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_angle", Message: "invalid value"})
	}
	if i.HookAngle != nil && *i.HookAngle != "" && !i.HookAngle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "hook_angle", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GeneratePresentationInput selects the sources and frameworks for a generated deck.
// An empty Title takes the brainstorm title.
type GeneratePresentationInput struct {
	BrainstormID     uuid.UUID
	ContextProfileID uuid.UUID
	Title            string
	ContentAngle     domain.ContentAngle
	HookAngle        *domain.HookAngle
}

// Validate checks all fields and collects all errors.
func (i GeneratePresentationInput) Validate() error {
	var errs []domain.FieldError

	errs = validateSources(errs, i.BrainstormID, i.ContextProfileID)
	if strings.TrimSpace(i.Title) != "" {
		errs = validateTitle(errs, i.Title)
	}
	errs = validateAngles(errs, i.ContentAngle, i.HookAngle)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// QuickStartInput is raw brainstorm text plus optional audience and framework.
// An empty ContentAngle defaults to PASE.
type QuickStartInput struct {
	Content      string
	Audience     string
	ContentAngle domain.ContentAngle
	HookAngle    *domain.HookAngle
}

// Validate checks all fields and collects all errors.
func (i QuickStartInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.ContentAngle != "" && !i.ContentAngle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_angle", Message: "invalid value"})
	}
	if i.HookAngle != nil && !i.HookAngle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "hook_angle", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i QuickStartInput) contentAngle() domain.ContentAngle {
	if i.ContentAngle == "" {
		return domain.ContentAnglePASE
	}
	return i.ContentAngle
}

func validateSources(errs []domain.FieldError, brainstormID, profileID uuid.UUID) []domain.FieldError {
	if brainstormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "brainstorm_id", Message: "required"})
	}
	if profileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "context_profile_id", Message: "required"})
	}
	return errs
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}
	return errs
}

func validateAngles(errs []domain.FieldError, content domain.ContentAngle, hook *domain.HookAngle) []domain.FieldError {
	if !content.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_angle", Message: "invalid value"})
	}
	if hook != nil && !hook.IsValid() {
		errs = append(errs, domain.FieldError{Field: "hook_angle", Message: "invalid value"})
	}
	return errs
}
