package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, 2024, date.Year())
		assert.Equal(t, time.January, date.Month())
		assert.Equal(t, 15, date.Day())
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2024/01/15")
		assert.ErrorContains(t, err, "invalid date format")
	})

	t.Run("Time component rejected", func(t *testing.T) {
		_, err := ParseDate("2024-01-15T10:00:00Z")
		assert.ErrorContains(t, err, "invalid date format")
	})

	t.Run("Invalid day", func(t *testing.T) {
		_, err := ParseDate("2023-02-29")
		assert.Error(t, err)
	})
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		start string
		days  int
		want  string
	}{
		{"2024-01-10", 7, "2024-01-17"},
		{"2024-02-25", 7, "2024-03-03"}, // leap year
		{"2023-02-25", 7, "2023-03-04"},
		{"2024-12-28", 7, "2025-01-04"},
		{"2024-01-10", 0, "2024-01-10"},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(AddDays(start, tt.days)))
		})
	}
}

func TestCalendarDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	late := time.Date(2024, 1, 10, 23, 30, 0, 0, moscow)
	assert.Equal(t, "2024-01-10", FormatDate(CalendarDate(late)))
}

func TestParseDateRange(t *testing.T) {
	t.Run("Same day", func(t *testing.T) {
		start, end, err := ParseDateRange("2024-01-10", "2024-01-10")
		require.NoError(t, err)
		assert.Equal(t, start, end)
		assert.Equal(t, 1, RentalDays(start, end))
	})

	t.Run("Week", func(t *testing.T) {
		start, end, err := ParseDateRange("2024-01-10", "2024-01-17")
		require.NoError(t, err)
		assert.Equal(t, 8, RentalDays(start, end))
	})

	t.Run("End before start", func(t *testing.T) {
		_, _, err := ParseDateRange("2024-01-10", "2024-01-09")
		assert.ErrorContains(t, err, "end date must be >= start date")
	})

	t.Run("Bad start", func(t *testing.T) {
		_, _, err := ParseDateRange("10.01.2024", "2024-01-17")
		assert.ErrorContains(t, err, "invalid start date")
	})
}
