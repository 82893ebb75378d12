package schedule

import "time"

// WorkSchedule is a versioned weekly shift template for one employee.
// At most one schedule should be effective for a given date; the resolver
// picks the latest effective_from when ranges overlap.
type WorkSchedule struct {
	ID                   string
	BusinessID           string
	EmployeeID           string
	EffectiveFrom        time.Time
	EffectiveTo          *time.Time
	BreakDurationMinutes int
	WeeklyHoursTarget    float64
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Days []WorkScheduleDay
}

// WorkScheduleDay holds the shift bounds for one weekday. Weekdays without
// a row have no scheduled shift; callers fall back to 09:00-17:00.
type WorkScheduleDay struct {
	ID             string
	WorkScheduleID string
	DayOfWeek      int // 1=Monday, ..., 7=Sunday
	StartTime      string
	EndTime        string
}

// Default shift bounds applied when a schedule has no row for a weekday.
const (
	DefaultStartTime = "09:00:00"
	DefaultEndTime   = "17:00:00"
)

// DayFor returns the day row for an ISO weekday, nil when absent.
func (s WorkSchedule) DayFor(dayOfWeek int) *WorkScheduleDay {
	for i := range s.Days {
		if s.Days[i].DayOfWeek == dayOfWeek {
			return &s.Days[i]
		}
	}
	return nil
}

// ISOWeekday converts time.Weekday to 1=Monday..7=Sunday.
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
