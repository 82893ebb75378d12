package attendance

import (
	"strings"
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	EmployeeID        string   `json:"employee_id,omitempty"`
	EntryMethod       string   `json:"entry_method"`
	Notes             *string  `json:"notes,omitempty"`
	LocationLatitude  *float64 `json:"location_latitude,omitempty"`
	LocationLongitude *float64 `json:"location_longitude,omitempty"`
}

var entryMethodValues = []string{"web", "mobile", "kiosk", "manual"}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntryMethod) {
		r.EntryMethod = "web"
	} else if !validator.IsInSlice(r.EntryMethod, entryMethodValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_method",
			Message: "entry_method must be one of: web, mobile, kiosk, manual",
		})
	}

	if r.LocationLatitude != nil && (*r.LocationLatitude < -90 || *r.LocationLatitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_latitude",
			Message: "location_latitude must be between -90 and 90",
		})
	}

	if r.LocationLongitude != nil && (*r.LocationLongitude < -180 || *r.LocationLongitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_longitude",
			Message: "location_longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID     string  `json:"employee_id,omitempty"`
	BreakStartTime *string `json:"break_start_time,omitempty"` // HH:MM:SS
	BreakEndTime   *string `json:"break_end_time,omitempty"`   // HH:MM:SS
	Notes          *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BreakStartTime != nil {
		if _, valid := validator.IsValidClockTime(*r.BreakStartTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start_time",
				Message: "break_start_time must be in HH:MM:SS format",
			})
		}
	}

	if r.BreakEndTime != nil {
		if _, valid := validator.IsValidClockTime(*r.BreakEndTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end_time",
				Message: "break_end_time must be in HH:MM:SS format",
			})
		}
	}

	if (r.BreakStartTime == nil) != (r.BreakEndTime == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start_time",
			Message: "break_start_time and break_end_time must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateRuleRequest struct {
	Name                     string  `json:"name"`
	LateGracePeriodMinutes   int     `json:"late_grace_period_minutes"`
	HalfDayThresholdMinutes  int     `json:"half_day_threshold_minutes"`
	OvertimeThresholdMinutes int     `json:"overtime_threshold_minutes"`
	OvertimeMultiplier       *string `json:"overtime_multiplier,omitempty"`
	WeekendOvertime          bool    `json:"weekend_overtime"`
	HolidayOvertime          bool    `json:"holiday_overtime"`
	LatePenaltyType          string  `json:"late_penalty_type"`

	// Parsed by Validate
	ParsedOvertimeMultiplier decimal.Decimal `json:"-"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.LateGracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_grace_period_minutes",
			Message: "late_grace_period_minutes must not be negative",
		})
	}

	if r.HalfDayThresholdMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_threshold_minutes",
			Message: "half_day_threshold_minutes must be positive",
		})
	}

	if r.OvertimeThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_threshold_minutes",
			Message: "overtime_threshold_minutes must not be negative",
		})
	}

	r.ParsedOvertimeMultiplier = decimal.NewFromFloat(1.5)
	if r.OvertimeMultiplier != nil {
		multiplier, err := decimal.NewFromString(*r.OvertimeMultiplier)
		if err != nil || multiplier.LessThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{
				Field:   "overtime_multiplier",
				Message: "overtime_multiplier must be a decimal of at least 1",
			})
		} else {
			r.ParsedOvertimeMultiplier = multiplier
		}
	}

	if validator.IsEmpty(r.LatePenaltyType) {
		r.LatePenaltyType = string(LatePenaltyNone)
	} else if !validator.IsInSlice(r.LatePenaltyType, LatePenaltyTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "late_penalty_type",
			Message: "late_penalty_type must be one of: none, half_day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, late, half_day, absent, on_leave, holiday",
		})
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, []string{"date", "status"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, status",
			})
		}
	} else {
		f.SortBy = "date" // Default sort
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          *string `json:"employee_name,omitempty"`
	Date                  string  `json:"date"`
	ClockInTime           *string `json:"clock_in_time,omitempty"`
	ClockOutTime          *string `json:"clock_out_time,omitempty"`
	TotalHours            float64 `json:"total_hours"`
	OvertimeHours         float64 `json:"overtime_hours"`
	LateMinutes           int     `json:"late_minutes"`
	EarlyDepartureMinutes int     `json:"early_departure_minutes"`
	Status                string  `json:"status"`
	AttendanceType        string  `json:"attendance_type"`
	Notes                 *string `json:"notes,omitempty"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type ListAttendanceResponse struct {
	Items      []AttendanceResponse `json:"items"`
	TotalItems int64                `json:"total_items"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("15:04:05")
	return &format
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                    a.ID,
		EmployeeID:            a.EmployeeID,
		EmployeeName:          a.EmployeeName,
		Date:                  a.Date.Format("2006-01-02"),
		ClockInTime:           timePtrToString(a.ClockIn),
		ClockOutTime:          timePtrToString(a.ClockOut),
		TotalHours:            a.TotalHours,
		OvertimeHours:         a.OvertimeHours,
		LateMinutes:           a.LateMinutes,
		EarlyDepartureMinutes: a.EarlyDepartureMinutes,
		Status:                string(a.Status),
		AttendanceType:        string(a.AttendanceType),
		Notes:                 a.Notes,
		CreatedAt:             a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             a.UpdatedAt.Format(time.RFC3339),
	}
}

type RuleResponse struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	LateGracePeriodMinutes   int    `json:"late_grace_period_minutes"`
	HalfDayThresholdMinutes  int    `json:"half_day_threshold_minutes"`
	OvertimeThresholdMinutes int    `json:"overtime_threshold_minutes"`
	OvertimeMultiplier       string `json:"overtime_multiplier"`
	WeekendOvertime          bool   `json:"weekend_overtime"`
	HolidayOvertime          bool   `json:"holiday_overtime"`
	LatePenaltyType          string `json:"late_penalty_type"`
	IsActive                 bool   `json:"is_active"`
	CreatedAt                string `json:"created_at"`
}

func RuleToResponse(r Rule) RuleResponse {
	return RuleResponse{
		ID:                       r.ID,
		Name:                     r.Name,
		LateGracePeriodMinutes:   r.LateGracePeriodMinutes,
		HalfDayThresholdMinutes:  r.HalfDayThresholdMinutes,
		OvertimeThresholdMinutes: r.OvertimeThresholdMinutes,
		OvertimeMultiplier:       r.OvertimeMultiplier.String(),
		WeekendOvertime:          r.WeekendOvertime,
		HolidayOvertime:          r.HolidayOvertime,
		LatePenaltyType:          string(r.LatePenaltyType),
		IsActive:                 r.IsActive,
		CreatedAt:                r.CreatedAt.Format(time.RFC3339),
	}
}
