package schedule

import (
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
)

type ScheduleDayInput struct {
	DayOfWeek int    `json:"day_of_week"` // 1=Monday, ..., 7=Sunday
	StartTime string `json:"start_time"`  // HH:MM:SS
	EndTime   string `json:"end_time"`    // HH:MM:SS
}

type CreateWorkScheduleRequest struct {
	EmployeeID           string             `json:"employee_id"`
	EffectiveFrom        string             `json:"effective_from"`
	EffectiveTo          *string            `json:"effective_to,omitempty"`
	BreakDurationMinutes int                `json:"break_duration_minutes"`
	WeeklyHoursTarget    float64            `json:"weekly_hours_target"`
	Days                 []ScheduleDayInput `json:"days"`

	// Parsed by Validate
	ParsedEffectiveFrom time.Time  `json:"-"`
	ParsedEffectiveTo   *time.Time `json:"-"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if date, valid := validator.IsValidDate(r.EffectiveFrom); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedEffectiveFrom = date
	}

	if r.EffectiveTo != nil {
		if date, valid := validator.IsValidDate(*r.EffectiveTo); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must be in YYYY-MM-DD format",
			})
		} else {
			r.ParsedEffectiveTo = &date
		}
	}

	if r.ParsedEffectiveTo != nil && r.ParsedEffectiveTo.Before(r.ParsedEffectiveFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_to",
			Message: "effective_to must not be before effective_from",
		})
	}

	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}

	if r.WeeklyHoursTarget < 0 || r.WeeklyHoursTarget > 168 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_hours_target",
			Message: "weekly_hours_target must be between 0 and 168",
		})
	}

	seen := map[int]bool{}
	for _, day := range r.Days {
		if day.DayOfWeek < 1 || day.DayOfWeek > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)",
			})
			continue
		}
		if seen[day.DayOfWeek] {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "duplicate day_of_week entry",
			})
			continue
		}
		seen[day.DayOfWeek] = true

		start, startOK := validator.IsValidClockTime(day.StartTime)
		end, endOK := validator.IsValidClockTime(day.EndTime)
		if !startOK || !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "start_time and end_time must be in HH:MM:SS format",
			})
			continue
		}
		if !end.After(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "end_time must be after start_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleDayResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkScheduleResponse struct {
	ID                   string                `json:"id"`
	EmployeeID           string                `json:"employee_id"`
	EffectiveFrom        string                `json:"effective_from"`
	EffectiveTo          *string               `json:"effective_to,omitempty"`
	BreakDurationMinutes int                   `json:"break_duration_minutes"`
	WeeklyHoursTarget    float64               `json:"weekly_hours_target"`
	Days                 []ScheduleDayResponse `json:"days"`
	CreatedAt            string                `json:"created_at"`
}

func ToResponse(ws WorkSchedule) WorkScheduleResponse {
	resp := WorkScheduleResponse{
		ID:                   ws.ID,
		EmployeeID:           ws.EmployeeID,
		EffectiveFrom:        ws.EffectiveFrom.Format("2006-01-02"),
		BreakDurationMinutes: ws.BreakDurationMinutes,
		WeeklyHoursTarget:    ws.WeeklyHoursTarget,
		CreatedAt:            ws.CreatedAt.Format(time.RFC3339),
	}
	if ws.EffectiveTo != nil {
		s := ws.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &s
	}
	for _, day := range ws.Days {
		resp.Days = append(resp.Days, ScheduleDayResponse{
			DayOfWeek: day.DayOfWeek,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		})
	}
	return resp
}
