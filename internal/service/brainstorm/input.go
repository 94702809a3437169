package brainstorm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// CreateBrainstormInput holds the parameters for creating a brainstorm.
type CreateBrainstormInput struct {
	Title       string
	Description *string
	Content     string
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateBrainstormInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateContent(errs, i.Content)
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	errs = validateTags(errs, i.Tags)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBrainstormInput holds the parameters for updating a brainstorm.
type UpdateBrainstormInput struct {
	BrainstormID uuid.UUID
	Title        *string
	Description  *string // nil = don't change; ptr("") = clear
	Content      *string
	Tags         *[]string
}

// Validate checks all fields and collects all errors.
func (i UpdateBrainstormInput) Validate() error {
	var errs []domain.FieldError

	if i.BrainstormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "brainstorm_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Content == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Content != nil {
		errs = validateContent(errs, *i.Content)
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	if i.Tags != nil {
		errs = validateTags(errs, *i.Tags)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
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

func validateContent(errs []domain.FieldError, content string) []domain.FieldError {
	if strings.TrimSpace(content) == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", MaxContentLength)})
	}
	return errs
}

func validateTags(errs []domain.FieldError, tags []string) []domain.FieldError {
	if len(tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", MaxTags)})
	}
	for _, t := range tags {
		if utf8.RuneCountInString(t) > MaxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("tag max %d characters", MaxTagLength)})
			break
		}
	}
	return errs
}
