package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. All
// methods take businessID to prevent cross-business data access. The
// one-row-per-(employee, date) invariant is enforced by a unique index,
// not by check-then-insert.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string, businessID string) (Attendance, error)

	// GetOpenByEmployeeAndDate returns the day's record with no clock-out
	// yet, nil when the employee has not clocked in.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, businessID string) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error
	List(ctx context.Context, filter Filter, businessID string) ([]Attendance, int64, error)

	// ListForPeriod returns every record for the employee within
	// [periodStart, periodEnd], feeding payroll aggregation.
	ListForPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, businessID string) ([]Attendance, error)
}

// RuleRepository defines data access for attendance rules.
type RuleRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)
	GetByID(ctx context.Context, id string, businessID string) (Rule, error)

	// GetActive returns the business's active rule, newest first when the
	// data is ambiguous; nil when no rule is active.
	GetActive(ctx context.Context, businessID string) (*Rule, error)

	List(ctx context.Context, businessID string) ([]Rule, error)

	// Activate flips the target rule active and deactivates any sibling in
	// a single statement.
	Activate(ctx context.Context, id string, businessID string) (Rule, error)
}
