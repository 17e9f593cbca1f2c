// Package datevalidator checks whether a two-digit year, month and day triple
// denotes a real calendar date.
//
// The package is stateless and goroutine-safe. It knows the Gregorian leap
// year rule and the month-length table, and it explains every rejection with a
// machine-readable Reason plus an English message, so callers can present or
// translate the failure without parsing strings.
//
// # Century policy
//
// Birth dates arrive as two-digit years. ExpandYear maps suffixes below 50 to
// the 2000s and the rest to the 1900s, which covers birth years 1950–2049.
// This is a policy, not a universal rule: a person born in 1948 is read as
// born in 2048.
//
// # Usage
//
//	res := datevalidator.Validate("99", "02", "29")
//	if !res.Valid {
//	    fmt.Println(res.Reason, res.Message)
//	    // february_non_leap February in a non-leap year has only 28 days
//	}
//
//	if err := datevalidator.Check("00", "02", "29"); err != nil {
//	    // not reached: 2000 is a leap year
//	}
//
// # Error Handling
//
// Result.Err converts a failed result into an error that wraps one of the
// sentinels ErrInvalidInput, ErrInvalidMonth or ErrInvalidDay:
//
//	if errors.Is(err, datevalidator.ErrInvalidDay) {
//	    // day out of range for that month
//	}
package datevalidator
