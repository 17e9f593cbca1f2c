package sanitizer

import "strings"

// MaskString replaces every rune except the first and last visibleChars with '*'.
// A string too short to show both ends is masked completely.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	start := string(runes[:visibleChars])
	end := string(runes[length-visibleChars:])
	middle := strings.Repeat("*", length-visibleChars*2)

	return start + middle + end
}

// MaskCode hides the personal segments of an identity code for logging.
// The first four characters (name initials) and the birth date are masked;
// sex, state and the trailing characters stay readable.
//
//	MaskCode("HEGM900515HJCRRX07") // "**********HJCRRX07"
func MaskCode(code string) string {
	runes := []rune(code)
	if len(runes) <= 10 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", 10) + string(runes[10:])
}
