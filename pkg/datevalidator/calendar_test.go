package datevalidator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/curp/pkg/datevalidator"
)

func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{1996, true},
		{2100, false},
		{2400, true},
		{1950, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, datevalidator.IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestIsLeapYear_MatchesGregorianRule(t *testing.T) {
	t.Parallel()

	for year := 1600; year <= 2400; year++ {
		want := (year%4 == 0 && year%100 != 0) || year%400 == 0
		assert.Equal(t, want, datevalidator.IsLeapYear(year), "year %d", year)
	}
}

func TestExpandYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		suffix int
		want   int
	}{
		{0, 2000},
		{23, 2023},
		{49, 2049},
		{50, 1950},
		{90, 1990},
		{99, 1999},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, datevalidator.ExpandYear(tt.suffix), "suffix %d", tt.suffix)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	t.Run("february follows leap years", func(t *testing.T) {
		assert.Equal(t, 29, datevalidator.DaysInMonth(2000, 2))
		assert.Equal(t, 28, datevalidator.DaysInMonth(1900, 2))
		assert.Equal(t, 29, datevalidator.DaysInMonth(2024, 2))
		assert.Equal(t, 28, datevalidator.DaysInMonth(2023, 2))
	})

	t.Run("thirty day months", func(t *testing.T) {
		for _, m := range []int{4, 6, 9, 11} {
			assert.Equal(t, 30, datevalidator.DaysInMonth(2023, m), "month %d", m)
		}
	})

	t.Run("thirty one day months", func(t *testing.T) {
		for _, m := range []int{1, 3, 5, 7, 8, 10, 12} {
			assert.Equal(t, 31, datevalidator.DaysInMonth(2023, m), "month %d", m)
		}
	})

	t.Run("out of range month", func(t *testing.T) {
		assert.Equal(t, 0, datevalidator.DaysInMonth(2023, 0))
		assert.Equal(t, 0, datevalidator.DaysInMonth(2023, 13))
	})
}
