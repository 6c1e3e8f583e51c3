package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is returned when a parameter does not have the expected shape.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidValue is returned when a parameter is outside its closed set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidDate is returned when a date string is malformed or not a real calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
