package services

import "errors"

// Error taxonomy of the Organiser. Mutating operations fail with the
// NotFound sentinel of the entity they were asked to act on; advisory
// lookups (GetAttendance, GetUserByUsername) return nil instead.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrSurveyNotFound     = errors.New("survey not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrChoiceNotFound     = errors.New("choice not found")
	ErrResponseNotFound   = errors.New("response not found")

	// ErrUserExists is returned when registering an already-taken username
	ErrUserExists = errors.New("user already registered")

	// ErrDuplicateAttendance is returned when a (user, event) pair already
	// has an attendance
	ErrDuplicateAttendance = errors.New("attendance already exists for user and event")

	// ErrInvalidQuestionType is returned for unrecognized question types
	ErrInvalidQuestionType = errors.New("invalid question type")

	// ErrInvalidChoiceID is returned when a response supplies a choice
	// that does not belong to the question being answered
	ErrInvalidChoiceID = errors.New("choice does not belong to question")

	// ErrUnsupportedType is returned by polymorphic lookups handed an
	// argument type they do not support
	ErrUnsupportedType = errors.New("unsupported argument type")
)
