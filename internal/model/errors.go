package model

import "errors"

// Field names used in validation errors
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldProgress    = "progress"
)

var (
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyDescription  = errors.New("description is required")
	ErrProgressRange     = errors.New("progress must be between 0 and 100")
	ErrProgressNotNumber = errors.New("progress must be a whole number")
)

// ValidationError reports which field of a record failed validation
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
