package schedule

import (
	"context"
	"time"
)

type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)

	// GetActiveForDate returns the schedule whose effective range covers
	// date; the most recently effective one wins when several match.
	GetActiveForDate(ctx context.Context, employeeID string, date time.Time, businessID string) (*WorkSchedule, error)

	ListByEmployee(ctx context.Context, employeeID string, businessID string) ([]WorkSchedule, error)

	// HasOverlap reports whether an existing schedule's effective range
	// intersects [effectiveFrom, effectiveTo].
	HasOverlap(ctx context.Context, employeeID string, effectiveFrom time.Time, effectiveTo *time.Time, businessID string) (bool, error)
}
