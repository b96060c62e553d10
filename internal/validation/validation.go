package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateRequired checks that a field is not empty or whitespace
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateMinLength checks the minimum length of a string
func ValidateMinLength(value string, minLength int, fieldName string) error {
	if utf8.RuneCountInString(value) < minLength {
		return fmt.Errorf("%s must be at least %d characters long", fieldName, minLength)
	}
	return nil
}

// ValidateMaxLength checks the maximum length of a string
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%s must be at most %d characters long", fieldName, maxLength)
	}
	return nil
}

// ValidatePositiveID checks that an identity value is usable
func ValidatePositiveID(id int, fieldName string) error {
	if id <= 0 {
		return errors.New(fieldName + " must be a positive id")
	}
	return nil
}

// EventValidation contains event-specific validations
type EventValidation struct{}

// ValidateEventName validates an event name
func (v EventValidation) ValidateEventName(name string) error {
	if err := ValidateRequired(name, "name"); err != nil {
		return err
	}
	return ValidateMaxLength(name, 100, "name")
}

// UserValidation contains user-specific validations
type UserValidation struct{}

// ValidateUsername validates a username. Uniqueness is enforced by the
// Organiser, not here.
func (v UserValidation) ValidateUsername(username string) error {
	if err := ValidateRequired(username, "username"); err != nil {
		return err
	}
	return ValidateMaxLength(username, 50, "username")
}

// SurveyValidation contains survey-specific validations
type SurveyValidation struct{}

// ValidateSurveyName validates a survey name
func (v SurveyValidation) ValidateSurveyName(name string) error {
	if err := ValidateRequired(name, "name"); err != nil {
		return err
	}
	return ValidateMaxLength(name, 100, "name")
}
