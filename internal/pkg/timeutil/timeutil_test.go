package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func atPtr(hour, min int) *time.Time {
	t := at(hour, min)
	return &t
}

func TestWorkingHours_FullDay(t *testing.T) {
	t.Parallel()
	hours := WorkingHours(at(9, 0), at(17, 0), nil, nil)
	assert.Equal(t, 8.0, hours)
}

func TestWorkingHours_WithBreak(t *testing.T) {
	t.Parallel()
	hours := WorkingHours(at(9, 0), at(17, 0), atPtr(12, 0), atPtr(13, 0))
	assert.Equal(t, 7.0, hours)
}

func TestWorkingHours_MissingBreakBoundIgnored(t *testing.T) {
	t.Parallel()
	hours := WorkingHours(at(9, 0), at(17, 0), atPtr(12, 0), nil)
	assert.Equal(t, 8.0, hours)
}

func TestWorkingHours_InvertedClockTimesFloorAtZero(t *testing.T) {
	t.Parallel()
	hours := WorkingHours(at(17, 0), at(9, 0), nil, nil)
	assert.Equal(t, 0.0, hours)
}

func TestLateMinutes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 20, LateMinutes(atPtr(9, 20), atPtr(9, 0)))
	assert.Equal(t, 0, LateMinutes(atPtr(8, 55), atPtr(9, 0)))
	assert.Equal(t, 0, LateMinutes(nil, atPtr(9, 0)))
	assert.Equal(t, 0, LateMinutes(atPtr(9, 20), nil))
}

func TestEarlyDepartureMinutes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 30, EarlyDepartureMinutes(atPtr(16, 30), atPtr(17, 0)))
	assert.Equal(t, 0, EarlyDepartureMinutes(atPtr(17, 10), atPtr(17, 0)))
	assert.Equal(t, 0, EarlyDepartureMinutes(nil, atPtr(17, 0)))
}

func TestCombineDateTime(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	combined, err := CombineDateTime(date, "09:30:00", loc)
	require.NoError(t, err)

	assert.Equal(t, 9, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, loc, combined.Location())

	_, err = CombineDateTime(date, "25:00:00", loc)
	assert.Error(t, err)
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()
	assert.False(t, IsWeekend(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))) // Monday
	assert.True(t, IsWeekend(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)))  // Sunday
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 30, DaysInMonth(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}
