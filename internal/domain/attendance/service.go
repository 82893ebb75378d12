package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens the caller's attendance record for today
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut completes today's open record and classifies it
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter Filter) (ListAttendanceResponse, error)

	// GetMyAttendance retrieves the authenticated employee's own records
	GetMyAttendance(ctx context.Context, filter Filter) (ListAttendanceResponse, error)
}

// RuleService defines business logic for attendance rule management
type RuleService interface {
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	ListRules(ctx context.Context) ([]RuleResponse, error)

	// ActivateRule makes the rule the business's single active policy
	ActivateRule(ctx context.Context, id string) (RuleResponse, error)
}
