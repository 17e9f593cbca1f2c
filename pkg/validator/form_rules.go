package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// PersonName validates that value contains at least one letter and otherwise
// only spaces, dots, apostrophes and hyphens. Accented letters and Ñ are
// letters. An empty value passes.
func PersonName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			letters := 0
			for _, r := range value {
				switch {
				case unicode.IsLetter(r):
					letters++
				case unicode.IsSpace(r), r == '.', r == '\'', r == '-':
				default:
					return false
				}
			}
			return letters > 0
		},
		Error: newError(field, "validation.person_name", "must contain only letters", nil),
	}
}

// OneOfFold validates that value matches one of options, ignoring case and
// surrounding whitespace. An empty value passes.
func OneOfFold(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			for _, opt := range options {
				if strings.EqualFold(v, opt) {
					return true
				}
			}
			return false
		},
		Error: newError(field, "validation.one_of",
			fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
			map[string]any{"options": options}),
	}
}
