package leave

import "context"

// LeaveService defines business logic for leave types, entitlements and
// requests
type LeaveService interface {
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	// ListEntitlements returns the employee's balances for a year
	ListEntitlements(ctx context.Context, employeeID string, year int) ([]EntitlementResponse, error)

	// SetEntitlement creates or adjusts a yearly allotment; used days are
	// never overwritten
	SetEntitlement(ctx context.Context, req SetEntitlementRequest) (EntitlementResponse, error)

	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]LeaveRequestResponse, int64, error)

	// DecideRequest approves or rejects a pending request; approval debits
	// the entitlement in the same transaction
	DecideRequest(ctx context.Context, id string, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)

	// CancelRequest lets the requester withdraw a still-pending request
	CancelRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
}
