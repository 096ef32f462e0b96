package utils

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used on the wire
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC midnight time
func ParseDate(dateStr string) (time.Time, error) {
	if len(dateStr) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %q", dateStr)
	}
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %q", dateStr)
	}
	return t, nil
}

// FormatDate renders the calendar date of t as yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalendarDate drops the clock part of t, keeping the calendar date it falls
// on in its own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays moves a calendar date by n days
func AddDays(t time.Time, n int) time.Time {
	return CalendarDate(t).AddDate(0, 0, n)
}

// ParseDateRange parses both ends of a rental period and checks end >= start
func ParseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date must be >= start date")
	}
	return start, end, nil
}

// RentalDays counts the days of a rental period, both ends included
func RentalDays(start, end time.Time) int {
	return int(CalendarDate(end).Sub(CalendarDate(start)).Hours()/24) + 1
}
