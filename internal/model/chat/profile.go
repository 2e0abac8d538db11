package chat

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Profile is the visitor's contact form, captured once before chatting starts.
type Profile struct {
	Name      string    `json:"name" validate:"min=2"`
	Contact   string    `json:"contact" validate:"phone"`
	Reason    string    `json:"reason" validate:"min=10"`
	CreatedAt time.Time `json:"createdAt"`
}

// Visitor-facing notices for each rejected field.
const (
	NoticeName    = "Please enter a valid name (at least 2 characters)"
	NoticeContact = "Please enter a valid contact number"
	NoticeReason  = "Please provide more details about your reason for contact (at least 10 characters)"
)

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field  string
	Notice string
}

func (e *ValidationError) Error() string {
	return e.Notice
}

var (
	contactNoise   = regexp.MustCompile(`[\s\-()]`)
	contactPattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidContact(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidContact accepts loose phone numbers: spaces, dashes and parentheses are
// ignored, an optional leading '+' is allowed and at least 10 characters must remain.
func ValidContact(raw string) bool {
	clean := contactNoise.ReplaceAllString(raw, "")
	return contactPattern.MatchString(clean) && len(clean) >= 10
}

// NewProfile trims and validates the submitted form. Nothing is returned on failure.
func NewProfile(name, contact, reason string, createdAt time.Time) (Profile, error) {
	profile := Profile{
		Name:      strings.TrimSpace(name),
		Contact:   strings.TrimSpace(contact),
		Reason:    strings.TrimSpace(reason),
		CreatedAt: createdAt.UTC(),
	}

	if err := validate.Struct(profile); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return Profile{}, fieldError(fieldErrs[0].Field())
		}
		return Profile{}, err
	}

	return profile, nil
}

func fieldError(field string) *ValidationError {
	switch field {
	case "Name":
		return &ValidationError{Field: "name", Notice: NoticeName}
	case "Contact":
		return &ValidationError{Field: "contact", Notice: NoticeContact}
	default:
		return &ValidationError{Field: "reason", Notice: NoticeReason}
	}
}
