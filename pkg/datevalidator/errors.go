package datevalidator

import "errors"

var (
	// ErrInvalidInput is returned when a date component is empty or not an integer.
	ErrInvalidInput = errors.New("invalid date input")

	// ErrInvalidMonth is returned when the month is outside 1-12.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay is returned when the day does not exist in the given month.
	ErrInvalidDay = errors.New("invalid day")
)
