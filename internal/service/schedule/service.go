package schedule

import (
	"context"
	"fmt"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/schedule"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
)

type WorkScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
	employee.EmployeeRepository
}

func NewWorkScheduleService(
	scheduleRepo schedule.WorkScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{
		WorkScheduleRepository: scheduleRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// CreateSchedule implements schedule.WorkScheduleService. Overlapping
// effective ranges for the same employee are rejected.
func (s *WorkScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, ident.BusinessID)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	overlaps, err := s.WorkScheduleRepository.HasOverlap(ctx, emp.ID, req.ParsedEffectiveFrom, req.ParsedEffectiveTo, ident.BusinessID)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to check schedule overlap: %w", err)
	}
	if overlaps {
		return schedule.WorkScheduleResponse{}, schedule.ErrScheduleOverlap
	}

	ws := schedule.WorkSchedule{
		BusinessID:           ident.BusinessID,
		EmployeeID:           emp.ID,
		EffectiveFrom:        req.ParsedEffectiveFrom,
		EffectiveTo:          req.ParsedEffectiveTo,
		BreakDurationMinutes: req.BreakDurationMinutes,
		WeeklyHoursTarget:    req.WeeklyHoursTarget,
	}
	for _, day := range req.Days {
		ws.Days = append(ws.Days, schedule.WorkScheduleDay{
			DayOfWeek: day.DayOfWeek,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		})
	}

	created, err := s.WorkScheduleRepository.Create(ctx, ws)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return schedule.ToResponse(created), nil
}

// ListSchedules implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) ListSchedules(ctx context.Context, employeeID string) ([]schedule.WorkScheduleResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if employeeID == "" && ident.EmployeeID != nil {
		employeeID = *ident.EmployeeID
	}
	if employeeID == "" {
		return nil, employee.ErrEmployeeNotFound
	}

	schedules, err := s.WorkScheduleRepository.ListByEmployee(ctx, employeeID, ident.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, schedule.ToResponse(ws))
	}

	return responses, nil
}
