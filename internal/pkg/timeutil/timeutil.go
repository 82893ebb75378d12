// Package timeutil holds the clock arithmetic shared by attendance and
// payroll: elapsed working time, lateness and early-departure deltas.
package timeutil

import (
	"fmt"
	"time"
)

// WorkingHours returns the fractional hours between clockIn and clockOut,
// minus the break span when both break bounds are present. Inverted inputs
// never produce a negative result.
func WorkingHours(clockIn, clockOut time.Time, breakStart, breakEnd *time.Time) float64 {
	worked := clockOut.Sub(clockIn).Minutes()
	if breakStart != nil && breakEnd != nil {
		worked -= breakEnd.Sub(*breakStart).Minutes()
	}
	if worked < 0 {
		worked = 0
	}
	return worked / 60
}

// LateMinutes returns how many whole minutes actual is past expected,
// zero when on time or when either bound is absent.
func LateMinutes(actual, expected *time.Time) int {
	if actual == nil || expected == nil {
		return 0
	}
	diff := actual.Sub(*expected).Minutes()
	if diff <= 0 {
		return 0
	}
	return int(diff)
}

// EarlyDepartureMinutes returns how many whole minutes actual is before
// expected, zero when either bound is absent.
func EarlyDepartureMinutes(actual, expected *time.Time) int {
	if actual == nil || expected == nil {
		return 0
	}
	diff := expected.Sub(*actual).Minutes()
	if diff <= 0 {
		return 0
	}
	return int(diff)
}

// CombineDateTime places a "HH:MM:SS" wall-clock string onto date in loc.
func CombineDateTime(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

// IsWeekend reports whether date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysInMonth returns the calendar length of the month containing date.
func DaysInMonth(date time.Time) int {
	firstOfNext := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
