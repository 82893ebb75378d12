package attendance

import (
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/schedule"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/timeutil"
)

// Classify assigns a final status from lateness, elapsed hours and the
// business's attendance rule:
//  1. late beyond the grace period: half_day when the penalty type is
//     half_day and the hours also fall below the half-day threshold,
//     otherwise late;
//  2. hours below the half-day threshold: half_day;
//  3. otherwise present.
func Classify(lateMinutes int, totalHours float64, rule attendance.Rule) attendance.Status {
	belowHalfDay := totalHours*60 < float64(rule.HalfDayThresholdMinutes)

	if lateMinutes > rule.LateGracePeriodMinutes {
		if rule.LatePenaltyType == attendance.LatePenaltyHalfDay && belowHalfDay {
			return attendance.StatusHalfDay
		}
		return attendance.StatusLate
	}

	if belowHalfDay {
		return attendance.StatusHalfDay
	}

	return attendance.StatusPresent
}

// OvertimeHours computes the overtime portion of a shift. On a weekend or
// holiday with the matching toggle enabled, the whole shift counts as
// overtime. Otherwise overtime is whatever exceeds the rule's threshold.
// The fallback rule accrues no overtime at all.
func OvertimeHours(totalHours float64, isWeekend, isHoliday bool, rule attendance.Rule) float64 {
	if !rule.AllowsOvertime() {
		return 0
	}

	if (isWeekend && rule.WeekendOvertime) || (isHoliday && rule.HolidayOvertime) {
		return totalHours
	}

	overtime := totalHours - float64(rule.OvertimeThresholdMinutes)/60
	if overtime < 0 {
		return 0
	}
	return overtime
}

// ShiftBounds resolves the expected start and end of the shift for date.
// When the schedule has no row for that weekday, or there is no schedule
// at all, the default 09:00-17:00 bounds apply.
func ShiftBounds(sched *schedule.WorkSchedule, date time.Time, loc *time.Location) (start, end time.Time, err error) {
	startClock := schedule.DefaultStartTime
	endClock := schedule.DefaultEndTime

	if sched != nil {
		if day := sched.DayFor(schedule.ISOWeekday(date)); day != nil {
			startClock = day.StartTime
			endClock = day.EndTime
		}
	}

	start, err = timeutil.CombineDateTime(date, startClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = timeutil.CombineDateTime(date, endClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}
