package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/schedule"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/timeutil"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	attendance.RuleRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
	business.BusinessRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	ruleRepo attendance.RuleRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	businessRepo business.BusinessRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepo,
		RuleRepository:         ruleRepo,
		EmployeeRepository:     employeeRepo,
		WorkScheduleRepository: scheduleRepo,
		BusinessRepository:     businessRepo,
	}
}

// resolveEmployeeID picks the employee the operation acts on. Staff always
// act on themselves; only admins may pass another employee's ID.
func resolveEmployeeID(ident identity.Identity, requested string) (string, error) {
	if requested != "" {
		if ident.EmployeeID != nil && *ident.EmployeeID == requested {
			return requested, nil
		}
		if !ident.IsAdmin() {
			return "", business.ErrAdminRequired
		}
		return requested, nil
	}

	if ident.EmployeeID == nil {
		return "", validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required for tokens not bound to an employee",
		}}
	}

	return *ident.EmployeeID, nil
}

// businessLocation loads the business's IANA timezone, falling back to UTC
// when the stored name no longer resolves.
func (a *AttendanceServiceImpl) businessLocation(ctx context.Context, businessID string) (*time.Location, error) {
	timezone, err := a.BusinessRepository.GetTimezone(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get business timezone: %w", err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC, nil
	}
	return loc, nil
}

// activeRule returns the business's active rule or the hardcoded fallback.
func (a *AttendanceServiceImpl) activeRule(ctx context.Context, businessID string) (attendance.Rule, error) {
	rule, err := a.RuleRepository.GetActive(ctx, businessID)
	if err != nil {
		return attendance.Rule{}, fmt.Errorf("failed to get active attendance rule: %w", err)
	}
	if rule == nil {
		return attendance.FallbackRule(businessID), nil
	}
	return *rule, nil
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := resolveEmployeeID(ident, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	loc, err := a.businessLocation(ctx, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := time.Now().In(loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)

	activeSchedule, err := a.WorkScheduleRepository.GetActiveForDate(ctx, employeeID, date, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	expectedStart, _, err := ShiftBounds(activeSchedule, nowLocal, loc)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve shift bounds: %w", err)
	}

	rule, err := a.activeRule(ctx, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	lateMinutes := timeutil.LateMinutes(&nowLocal, &expectedStart)

	attendanceType := attendance.TypeRegular
	if timeutil.IsWeekend(nowLocal) {
		attendanceType = attendance.TypeWeekend
	}

	// Lateness is reflected immediately; hours-based reclassification
	// happens at clock-out.
	status := attendance.StatusPresent
	if lateMinutes > rule.LateGracePeriodMinutes {
		status = attendance.StatusLate
	}

	clockIn := nowLocal
	entryMethod := req.EntryMethod
	data := attendance.Attendance{
		BusinessID:        ident.BusinessID,
		EmployeeID:        employeeID,
		Date:              date,
		ClockIn:           &clockIn,
		LateMinutes:       lateMinutes,
		Status:            status,
		AttendanceType:    attendanceType,
		EntryMethod:       &entryMethod,
		Notes:             req.Notes,
		LocationLatitude:  req.LocationLatitude,
		LocationLongitude: req.LocationLongitude,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := resolveEmployeeID(ident, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	loc, err := a.businessLocation(ctx, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := time.Now().In(loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)

	att, err := a.AttendanceRepository.GetOpenByEmployeeAndDate(ctx, employeeID, date, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open attendance record: %w", err)
	}
	if att == nil || att.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if att.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	var breakStart, breakEnd *time.Time
	if req.BreakStartTime != nil && req.BreakEndTime != nil {
		start, err := timeutil.CombineDateTime(nowLocal, *req.BreakStartTime, loc)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		end, err := timeutil.CombineDateTime(nowLocal, *req.BreakEndTime, loc)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		breakStart, breakEnd = &start, &end
	}

	activeSchedule, err := a.WorkScheduleRepository.GetActiveForDate(ctx, employeeID, date, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, expectedEnd, err := ShiftBounds(activeSchedule, nowLocal, loc)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve shift bounds: %w", err)
	}

	rule, err := a.activeRule(ctx, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	totalHours := timeutil.WorkingHours(att.ClockIn.In(loc), nowLocal, breakStart, breakEnd)
	earlyDeparture := timeutil.EarlyDepartureMinutes(&nowLocal, &expectedEnd)

	isWeekend := att.AttendanceType == attendance.TypeWeekend
	isHoliday := att.AttendanceType == attendance.TypeHoliday

	att.ClockOut = &nowLocal
	att.BreakStart = breakStart
	att.BreakEnd = breakEnd
	att.TotalHours = totalHours
	att.OvertimeHours = OvertimeHours(totalHours, isWeekend, isHoliday, rule)
	att.EarlyDepartureMinutes = earlyDeparture
	att.Status = Classify(att.LateMinutes, totalHours, rule)
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	if err := a.AttendanceRepository.Update(ctx, *att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ToResponse(*att), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Staff may only see their own records.
	if !ident.IsAdmin() && (ident.EmployeeID == nil || att.EmployeeID != *ident.EmployeeID) {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return attendance.ToResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return a.list(ctx, filter, ident.BusinessID)
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if ident.EmployeeID == nil {
		return attendance.ListAttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	filter.EmployeeID = ident.EmployeeID
	return a.list(ctx, filter, ident.BusinessID)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.Filter, businessID string) (attendance.ListAttendanceResponse, error) {
	records, total, err := a.AttendanceRepository.List(ctx, filter, businessID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Items:      make([]attendance.AttendanceResponse, 0, len(records)),
		TotalItems: total,
	}
	for _, att := range records {
		resp.Items = append(resp.Items, attendance.ToResponse(att))
	}

	return resp, nil
}
