package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// emailPattern accepts local@domain.tld: exactly one '@', no whitespace, and
// a domain made of non-empty dot-separated labels with at least one dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "cannot be empty", nil)
	}
	return nil
}

func maxLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", limit), nil)
	}
	return nil
}

func inRange(field string, value, lo, hi float64) error {
	if value < lo || value > hi {
		return NewValidationError(field, fmt.Sprintf("must be between %g and %g", lo, hi), nil)
	}
	return nil
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return NewValidationError(field, "cannot be empty", nil)
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
