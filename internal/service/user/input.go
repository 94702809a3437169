package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// Validate validates the demo account settings.
func (d DemoUser) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(d.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	} else if len(email) > 255 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if len(d.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
