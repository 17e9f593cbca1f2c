package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/curp/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Required("f", "X").Check())
	assert.False(t, validator.Required("f", "").Check())
	assert.False(t, validator.Required("f", " \t").Check())

	rule := validator.Required("given_names", "")
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	assert.Equal(t, "given_names", rule.Error.Field)
}

func TestLengthRulesCountRunes(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxLen("f", "MUÑOZ", 5).Check())
	assert.False(t, validator.MaxLen("f", "MUÑOZES", 5).Check())
}

func TestIntRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		ok    bool
	}{
		{"", true},
		{"1", true},
		{"1024", true},
		{" 256 ", true},
		{"0", false},
		{"1025", false},
		{"-5", false},
		{"12px", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, validator.IntRange("size", tt.value, 1, 1024).Check(), tt.value)
	}

	rule := validator.IntRange("size", "0", 1, 1024)
	assert.Equal(t, "validation.range", rule.Error.TranslationKey)
	assert.Equal(t, "must be between 1 and 1024", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "size", "min": 1, "max": 1024}, rule.Error.TranslationValues)
}

func TestPersonName(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"JOSÉ MARÍA", "MUÑOZ", "MA. ELENA", "O'BRIEN", "PÉREZ-GIL", ""} {
		assert.True(t, validator.PersonName("f", v).Check(), v)
	}
	for _, v := range []string{"JUAN2", "ANA_MARIA", "<script>", "'-", ". ."} {
		assert.False(t, validator.PersonName("f", v).Check(), v)
	}
}

func TestOneOfFold(t *testing.T) {
	t.Parallel()

	options := []string{"H", "M", "HOMBRE", "MUJER"}
	assert.True(t, validator.OneOfFold("sex", "h", options).Check())
	assert.True(t, validator.OneOfFold("sex", " Mujer ", options).Check())
	assert.True(t, validator.OneOfFold("sex", "", options).Check())
	assert.False(t, validator.OneOfFold("sex", "X", options).Check())

	rule := validator.OneOfFold("sex", "X", options)
	assert.Equal(t, "must be one of: H, M, HOMBRE, MUJER", rule.Error.Message)
}
