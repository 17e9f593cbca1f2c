package curp

import "regexp"

// wellFormed matches the positional shape of a generated code. Letter
// positions accept Ñ and accented vowels because the name rules keep them.
var wellFormed = regexp.MustCompile(`^\p{Lu}{4}\d{6}[HM][A-Z]{2}\p{Lu}{3}\d[0-9A-Z]$`)

// IsWellFormed reports whether code has the shape of a generated code.
// It does not verify the date or the trailing characters.
func IsWellFormed(code string) bool {
	return wellFormed.MatchString(code)
}
