package contextprofile

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// CreateProfileInput holds the parameters for creating a context profile.
type CreateProfileInput struct {
	Name           string
	BusinessType   string
	TargetAudience string
	Objectives     string
	BrandTone      string
	Preferences    json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreateProfileInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateText(errs, "business_type", i.BusinessType)
	errs = validateText(errs, "target_audience", i.TargetAudience)
	errs = validateText(errs, "objectives", i.Objectives)
	errs = validateText(errs, "brand_tone", i.BrandTone)
	errs = validatePreferences(errs, i.Preferences)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds the parameters for updating a context profile.
type UpdateProfileInput struct {
	ProfileID      uuid.UUID
	Name           *string
	BusinessType   *string
	TargetAudience *string
	Objectives     *string
	BrandTone      *string
	Preferences    json.RawMessage // nil = don't change
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if i.Name == nil && i.BusinessType == nil && i.TargetAudience == nil &&
		i.Objectives == nil && i.BrandTone == nil && i.Preferences == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.BusinessType != nil {
		errs = validateText(errs, "business_type", *i.BusinessType)
	}
	if i.TargetAudience != nil {
		errs = validateText(errs, "target_audience", *i.TargetAudience)
	}
	if i.Objectives != nil {
		errs = validateText(errs, "objectives", *i.Objectives)
	}
	if i.BrandTone != nil {
		errs = validateText(errs, "brand_tone", *i.BrandTone)
	}
	errs = validatePreferences(errs, i.Preferences)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateDefaultInput describes the profile created on the quick-start path.
// Every field is optional.
type CreateDefaultInput struct {
	Name        string
	Audience    string
	Objectives  []string
	Preferences map[string]string
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	return errs
}

func validateText(errs []domain.FieldError, field, value string) []domain.FieldError {
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxFieldLength)})
	}
	return errs
}

// validatePreferences accepts nil or a JSON object.
func validatePreferences(errs []domain.FieldError, prefs json.RawMessage) []domain.FieldError {
	if prefs == nil {
		return errs
	}
	if len(prefs) > MaxPreferencesLength {
		return append(errs, domain.FieldError{Field: "preferences", Message: "too large"})
	}
	var obj map[string]any
	if err := json.Unmarshal(prefs, &obj); err != nil || obj == nil {
		return append(errs, domain.FieldError{Field: "preferences", Message: "must be a JSON object"})
	}
	return errs
}
