package curp

import (
	"fmt"
	"strings"
)

// Sex is the registry sex marker.
type Sex int

const (
	SexUnspecified Sex = iota
	Male
	Female
)

// Letter returns the code letter: 'H' (hombre) for Male, 'M' (mujer) for Female.
func (s Sex) Letter() (rune, bool) {
	switch s {
	case Male:
		return 'H', true
	case Female:
		return 'M', true
	default:
		return 0, false
	}
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unspecified"
	}
}

// ParseSex accepts H, M, HOMBRE, MUJER, MALE and FEMALE in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HOMBRE", "MALE":
		return Male, nil
	case "M", "MUJER", "FEMALE":
		return Female, nil
	default:
		return SexUnspecified, fmt.Errorf("%w: %q", ErrInvalidSex, s)
	}
}

// BirthDate holds the two-digit year suffix, month and day exactly as they
// appear in the code.
type BirthDate struct {
	Year  string
	Month string
	Day   string
}

// NewBirthDate formats a full year, month and day as a BirthDate.
// Only the last two digits of the year are kept.
func NewBirthDate(year, month, day int) BirthDate {
	return BirthDate{
		Year:  fmt.Sprintf("%02d", year%100),
		Month: fmt.Sprintf("%02d", month),
		Day:   fmt.Sprintf("%02d", day),
	}
}

// String returns the six date digits, YYMMDD.
func (d BirthDate) String() string {
	return d.Year + d.Month + d.Day
}

// Person is the normalized input for Generate.
// Text fields are expected upper case and trimmed; State must be a table key.
type Person struct {
	GivenNames      string
	PaternalSurname string
	MaternalSurname string
	BirthDate       BirthDate
	Sex             Sex
	State           string
}
