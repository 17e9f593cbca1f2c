package datevalidator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Reason classifies the outcome of Validate.
// Values are stable and double as translation keys.
type Reason string

const (
	ReasonValid             Reason = "valid"
	ReasonInvalidInput      Reason = "invalid_input"
	ReasonInvalidMonth      Reason = "invalid_month"
	ReasonInvalidDay        Reason = "invalid_day"
	ReasonFebruaryNonLeap   Reason = "february_non_leap"
	ReasonFebruaryLeap      Reason = "february_leap"
	ReasonThirtyDayMonth    Reason = "thirty_day_month"
	ReasonThirtyOneDayMonth Reason = "thirty_one_day_month"
)

// Result describes whether a date triple is a real calendar date.
// Year holds the expanded four-digit year. Year, Month, Day and MaxDay are
// populated for valid results and for day failures, so callers can render
// reasons such as "month 4 has only 30 days" in their own words.
type Result struct {
	Valid   bool
	Reason  Reason
	Message string
	Year    int
	Month   int
	Day     int
	MaxDay  int
}

// Err returns nil for a valid result, otherwise an error wrapping the
// sentinel that matches the reason.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	var sentinel error
	switch r.Reason {
	case ReasonInvalidInput:
		sentinel = ErrInvalidInput
	case ReasonInvalidMonth:
		sentinel = ErrInvalidMonth
	default:
		sentinel = ErrInvalidDay
	}
	return fmt.Errorf("%w: %s", sentinel, r.Message)
}

// Time returns the date at midnight UTC, or the zero time for an invalid result.
func (r Result) Time() time.Time {
	if !r.Valid {
		return time.Time{}
	}
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
}

// Validate checks a two-digit year suffix, month and day.
// It has no side effects and returns the same Result for the same input.
func Validate(year, month, day string) Result {
	y, okY := parseComponent(year)
	m, okM := parseComponent(month)
	d, okD := parseComponent(day)
	if !okY || !okM || !okD || y < 0 || y > 99 {
		return fail(ReasonInvalidInput, "invalid date")
	}

	if m < 1 || m > 12 {
		return fail(ReasonInvalidMonth, "invalid month")
	}

	fullYear := ExpandYear(y)
	maxDay := DaysInMonth(fullYear, m)

	res := Result{Year: fullYear, Month: m, Day: d, MaxDay: maxDay}

	if d < 1 {
		return res.fail(ReasonInvalidDay, "invalid day")
	}
	if d > maxDay {
		switch {
		case m == int(time.February) && IsLeapYear(fullYear):
			return res.fail(ReasonFebruaryLeap, "February in a leap year has only 29 days")
		case m == int(time.February):
			return res.fail(ReasonFebruaryNonLeap, "February in a non-leap year has only 28 days")
		case isThirtyDayMonth(m):
			return res.fail(ReasonThirtyDayMonth, fmt.Sprintf("month %d has only 30 days", m))
		default:
			return res.fail(ReasonThirtyOneDayMonth, fmt.Sprintf("month %d has 31 days", m))
		}
	}

	res.Valid = true
	res.Reason = ReasonValid
	res.Message = "valid"
	return res
}

// Check is Validate followed by Result.Err.
func Check(year, month, day string) error {
	return Validate(year, month, day).Err()
}

func fail(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message}
}

func (r Result) fail(reason Reason, message string) Result {
	r.Reason = reason
	r.Message = message
	return r
}

func parseComponent(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
