package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Required fails on an empty or whitespace-only value.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: newError(field, "validation.required", "field is required", nil),
	}
}

// MaxLen counts runes, so accented letters and Ñ count once.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: newError(field, "validation.max_length",
			fmt.Sprintf("must be at most %d characters long", max),
			map[string]any{"max": max}),
	}
}

// IntRange fails unless value is a decimal integer in [min, max]. An empty
// value passes.
func IntRange(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			n, err := strconv.Atoi(v)
			return err == nil && n >= min && n <= max
		},
		Error: newError(field, "validation.range",
			fmt.Sprintf("must be between %d and %d", min, max),
			map[string]any{"min": min, "max": max}),
	}
}
