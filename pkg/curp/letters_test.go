package curp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/curp/pkg/curp"
)

func TestFirstVowel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected rune
	}{
		{"ERNANDEZ", 'E'},
		{"ARCIA", 'A'},
		{"ÉREZ", 'É'},
		{"RÚZ", 'Ú'},
		{"NCH", 'X'},
		{"", 'X'},
		{"Y", 'X'},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, curp.FirstVowel(tt.input), "input %q", tt.input)
	}
}

func TestFirstInnerConsonant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected rune
	}{
		{"first of several", "ERNANDEZ", 'R'},
		{"two consonants", "ARCIA", 'R'},
		{"single consonant falls back", "ARIA", 'X'},
		{"no consonants", "UA", 'X'},
		{"empty", "", 'X'},
		{"enye counts", "UÑOZ", 'Ñ'},
		{"accented vowels skipped", "ÉRÉZ", 'R'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, curp.FirstInnerConsonant(tt.input))
		})
	}
}
