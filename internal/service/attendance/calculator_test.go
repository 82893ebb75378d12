package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/schedule"
)

func activeRule() attendance.Rule {
	return attendance.Rule{
		ID:                       "rule-1",
		BusinessID:               "biz-1",
		Name:                     "standard",
		LateGracePeriodMinutes:   15,
		HalfDayThresholdMinutes:  240,
		OvertimeThresholdMinutes: 480,
		OvertimeMultiplier:       decimal.NewFromFloat(1.5),
		LatePenaltyType:          attendance.LatePenaltyNone,
		IsActive:                 true,
	}
}

func TestClassify_PresentWithinGrace(t *testing.T) {
	t.Parallel()
	status := Classify(10, 8.0, activeRule())
	assert.Equal(t, attendance.StatusPresent, status)
}

func TestClassify_LateBeyondGrace(t *testing.T) {
	t.Parallel()
	// 09:20 arrival against a 09:00 start with 15 minutes grace
	status := Classify(20, 7.5, activeRule())
	assert.Equal(t, attendance.StatusLate, status)
}

func TestClassify_HalfDayUnderThreshold(t *testing.T) {
	t.Parallel()
	// 3.5 worked hours against a 240-minute threshold
	status := Classify(0, 3.5, activeRule())
	assert.Equal(t, attendance.StatusHalfDay, status)
}

func TestClassify_HalfDayPenaltyWinsWhenLateAndShort(t *testing.T) {
	t.Parallel()
	rule := activeRule()
	rule.LatePenaltyType = attendance.LatePenaltyHalfDay
	status := Classify(20, 3.5, rule)
	assert.Equal(t, attendance.StatusHalfDay, status)
}

func TestClassify_LateWinsWhenHoursSufficient(t *testing.T) {
	t.Parallel()
	rule := activeRule()
	rule.LatePenaltyType = attendance.LatePenaltyHalfDay
	status := Classify(20, 8.0, rule)
	assert.Equal(t, attendance.StatusLate, status)
}

func TestClassify_ExactGraceIsPresent(t *testing.T) {
	t.Parallel()
	status := Classify(15, 8.0, activeRule())
	assert.Equal(t, attendance.StatusPresent, status)
}

func TestClassify_ExactThresholdIsNotHalfDay(t *testing.T) {
	t.Parallel()
	status := Classify(0, 4.0, activeRule())
	assert.Equal(t, attendance.StatusPresent, status)
}

func TestOvertimeHours_BeyondThreshold(t *testing.T) {
	t.Parallel()
	ot := OvertimeHours(10.0, false, false, activeRule())
	assert.InDelta(t, 2.0, ot, 1e-9)
}

func TestOvertimeHours_UnderThresholdIsZero(t *testing.T) {
	t.Parallel()
	ot := OvertimeHours(7.0, false, false, activeRule())
	assert.Equal(t, 0.0, ot)
}

func TestOvertimeHours_WeekendWholeShift(t *testing.T) {
	t.Parallel()
	rule := activeRule()
	rule.WeekendOvertime = true
	ot := OvertimeHours(6.0, true, false, rule)
	assert.Equal(t, 6.0, ot)
}

func TestOvertimeHours_WeekendWithoutToggleUsesThreshold(t *testing.T) {
	t.Parallel()
	ot := OvertimeHours(6.0, true, false, activeRule())
	assert.Equal(t, 0.0, ot)
}

func TestOvertimeHours_HolidayWholeShift(t *testing.T) {
	t.Parallel()
	rule := activeRule()
	rule.HolidayOvertime = true
	ot := OvertimeHours(5.0, false, true, rule)
	assert.Equal(t, 5.0, ot)
}

func TestOvertimeHours_FallbackRuleNeverAccrues(t *testing.T) {
	t.Parallel()
	rule := attendance.FallbackRule("biz-1")
	assert.Equal(t, 0.0, OvertimeHours(12.0, false, false, rule))
	assert.Equal(t, 0.0, OvertimeHours(12.0, true, true, rule))
}

func TestShiftBounds_ScheduledDay(t *testing.T) {
	t.Parallel()
	sched := &schedule.WorkSchedule{
		Days: []schedule.WorkScheduleDay{
			{DayOfWeek: 1, StartTime: "08:00:00", EndTime: "16:30:00"},
		},
	}
	// 2025-06-02 is a Monday
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	start, end, err := ShiftBounds(sched, date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 2, 16, 30, 0, 0, time.UTC), end)
}

func TestShiftBounds_UnscheduledWeekdayFallsBack(t *testing.T) {
	t.Parallel()
	sched := &schedule.WorkSchedule{
		Days: []schedule.WorkScheduleDay{
			{DayOfWeek: 1, StartTime: "08:00:00", EndTime: "16:30:00"},
		},
	}
	// Tuesday has no row
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	start, end, err := ShiftBounds(sched, date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 3, 17, 0, 0, 0, time.UTC), end)
}

func TestShiftBounds_NoScheduleUsesDefaults(t *testing.T) {
	t.Parallel()
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	start, end, err := ShiftBounds(nil, date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 4, 17, 0, 0, 0, time.UTC), end)
}

func TestShiftBounds_RespectsLocation(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	start, _, err := ShiftBounds(nil, date, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 4, 9, 0, 0, 0, loc), start)
}
