package curp

import (
	"strings"
	"unicode/utf8"
)

// placeholder fills a position when no suitable letter exists.
const placeholder = 'X'

const (
	vowels     = "AEIOUÁÉÍÓÚ"
	consonants = "BCDFGHJKLMNÑPQRSTVWXYZ"
)

// FirstVowel returns the first vowel in text, or 'X' when there is none.
// Callers pass the surname without its first letter.
func FirstVowel(text string) rune {
	for _, r := range text {
		if strings.ContainsRune(vowels, r) {
			return r
		}
	}
	return placeholder
}

// FirstInnerConsonant returns the first consonant in text when text holds at
// least two consonants, otherwise 'X'. Callers pass the word without its first
// letter.
func FirstInnerConsonant(text string) rune {
	var first rune
	found := 0
	for _, r := range text {
		if !strings.ContainsRune(consonants, r) {
			continue
		}
		if found == 0 {
			first = r
		}
		found++
		if found > 1 {
			return first
		}
	}
	return placeholder
}

// firstRune splits s into its first rune and the remainder.
func firstRune(s string) (rune, string) {
	if s == "" {
		return placeholder, ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return r, s[size:]
}
