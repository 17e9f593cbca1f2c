package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ToUpper converts a string to uppercase, including accented letters (á → Á, ñ → Ñ).
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// CollapseSpaces replaces every run of whitespace with a single space and trims the result.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveDiacritics strips combining marks after canonical decomposition,
// so "Querétaro" becomes "Queretaro" and "Ñ" becomes "N".
// Use it for lookup keys only: the CURP letter rules need Ñ and accented vowels intact.
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// KeepLetters drops every rune that is neither a letter nor a space.
// Dots are kept because abbreviated given names ("MA.", "J.") are meaningful.
func KeepLetters(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '.' {
			return r
		}
		return -1
	}, s)
}

// TrimNameWords strips the leading non-letters of every whitespace-separated
// word, drops words left without a letter and single-spaces the rest.
// ".MARIA" becomes "MARIA" while a trailing dot ("MA.") survives.
func TrimNameWords(s string) string {
	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		w = strings.TrimLeftFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
		if w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// PersonName normalizes a name or surname field the way the CURP rules expect it:
// trimmed, single-spaced and upper-cased, with accents preserved.
var PersonName = Compose(KeepLetters, TrimNameWords, ToUpper)

// LookupKey normalizes free text into a comparison key: single-spaced,
// upper-cased and without diacritics.
var LookupKey = Compose(CollapseSpaces, ToUpper, RemoveDiacritics)
