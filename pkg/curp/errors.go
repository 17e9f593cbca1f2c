package curp

import "errors"

var (
	// ErrEmptyField is returned when a given name or surname is blank after trimming.
	ErrEmptyField = errors.New("required field is empty")

	// ErrUnknownState is returned when the state of birth is not in the state table.
	ErrUnknownState = errors.New("unknown state of birth")

	// ErrInvalidSex is returned when the sex is neither Male nor Female.
	ErrInvalidSex = errors.New("invalid sex")
)

// Field names reported by FieldError.
const (
	FieldGivenNames      = "given_names"
	FieldPaternalSurname = "paternal_surname"
	FieldMaternalSurname = "maternal_surname"
	FieldSex             = "sex"
	FieldState           = "state"
)

// FieldError ties a failure to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
