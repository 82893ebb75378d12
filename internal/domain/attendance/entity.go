package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one row per (employee, calendar date). Created by clock-in,
// completed by clock-out.
type Attendance struct {
	ID                    string
	BusinessID            string
	EmployeeID            string
	Date                  time.Time
	ClockIn               *time.Time
	ClockOut              *time.Time
	BreakStart            *time.Time
	BreakEnd              *time.Time
	TotalHours            float64
	OvertimeHours         float64
	LateMinutes           int
	EarlyDepartureMinutes int
	Status                Status
	AttendanceType        Type
	EntryMethod           *string
	Notes                 *string
	LocationLatitude      *float64
	LocationLongitude     *float64
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined fields
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
	StatusHoliday Status = "holiday"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusAbsent),
	string(StatusOnLeave),
	string(StatusHoliday),
}

type Type string

const (
	TypeRegular Type = "regular"
	TypeWeekend Type = "weekend"
	TypeHoliday Type = "holiday"
)

// LatePenaltyType decides what happens past the grace period.
type LatePenaltyType string

const (
	LatePenaltyNone    LatePenaltyType = "none"
	LatePenaltyHalfDay LatePenaltyType = "half_day"
)

var LatePenaltyTypeValues = []string{
	string(LatePenaltyNone),
	string(LatePenaltyHalfDay),
}

// Rule is the per-business attendance policy. At most one rule is active
// per business at a time.
type Rule struct {
	ID                       string
	BusinessID               string
	Name                     string
	LateGracePeriodMinutes   int
	HalfDayThresholdMinutes  int
	OvertimeThresholdMinutes int
	OvertimeMultiplier       decimal.Decimal
	WeekendOvertime          bool
	HolidayOvertime          bool
	LatePenaltyType          LatePenaltyType
	IsActive                 bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// FallbackRule are the hardcoded thresholds applied when a business has no
// active rule: late past 30 minutes, half day under 4 hours, no overtime.
func FallbackRule(businessID string) Rule {
	return Rule{
		BusinessID:               businessID,
		Name:                     "fallback",
		LateGracePeriodMinutes:   30,
		HalfDayThresholdMinutes:  240,
		OvertimeThresholdMinutes: 0,
		OvertimeMultiplier:       decimal.NewFromFloat(1.5),
		WeekendOvertime:          false,
		HolidayOvertime:          false,
		LatePenaltyType:          LatePenaltyNone,
	}
}

// AllowsOvertime reports whether the rule accrues overtime at all. The
// fallback rule never does.
func (r Rule) AllowsOvertime() bool {
	return r.ID != ""
}
