package schedule

import "context"

// WorkScheduleService defines business logic for work schedule management
type WorkScheduleService interface {
	CreateSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	ListSchedules(ctx context.Context, employeeID string) ([]WorkScheduleResponse, error)
}
