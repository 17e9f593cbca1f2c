package datevalidator

import "time"

// centuryPivot splits two-digit years between the 1900s and the 2000s.
const centuryPivot = 50

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ExpandYear turns a two-digit year suffix into a full year.
// Suffixes below 50 map to 2000+suffix, the rest to 1900+suffix.
func ExpandYear(suffix int) int {
	if suffix < centuryPivot {
		return 2000 + suffix
	}
	return 1900 + suffix
}

// DaysInMonth returns the number of days in month of year.
// It returns 0 when month is outside 1-12.
func DaysInMonth(year, month int) int {
	switch time.Month(month) {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	default:
		return 0
	}
}

func isThirtyDayMonth(month int) bool {
	switch time.Month(month) {
	case time.April, time.June, time.September, time.November:
		return true
	}
	return false
}
