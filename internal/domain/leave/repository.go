package leave

import "context"

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string, businessID string) (LeaveType, error)
	List(ctx context.Context, businessID string) ([]LeaveType, error)
}

type EntitlementRepository interface {
	Upsert(ctx context.Context, e Entitlement) (Entitlement, error)
	Get(ctx context.Context, employeeID, leaveTypeID string, year int, businessID string) (Entitlement, error)
	ListByEmployee(ctx context.Context, employeeID string, year int, businessID string) ([]Entitlement, error)

	// ApplyUsage adds days to used_days and recomputes remaining_days in a
	// single conditional update; it fails with ErrInsufficientBalance when
	// the balance would go negative. Negative days reverse a prior usage.
	ApplyUsage(ctx context.Context, employeeID, leaveTypeID string, year int, days float64, businessID string) (Entitlement, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, businessID string) (LeaveRequest, error)
	List(ctx context.Context, filter RequestFilter, businessID string) ([]LeaveRequest, int64, error)

	// UpdateStatus transitions the request only when its current status is
	// still pending, returning ErrRequestAlreadyClosed otherwise.
	UpdateStatus(ctx context.Context, req LeaveRequest) error
}
