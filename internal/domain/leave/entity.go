package leave

import "time"

// LeaveType is a per-business category of leave (annual, sick, unpaid...).
type LeaveType struct {
	ID          string
	BusinessID  string
	Name        string
	Description *string

	// DefaultDays seeds the yearly entitlement for new employees.
	DefaultDays float64
	IsPaid      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Entitlement is the allotment per (employee, leave type, year).
// Invariant: RemainingDays = TotalDays + CarriedForwardDays - UsedDays.
type Entitlement struct {
	ID                 string
	BusinessID         string
	EmployeeID         string
	LeaveTypeID        string
	Year               int
	TotalDays          float64
	CarriedForwardDays float64
	UsedDays           float64
	RemainingDays      float64
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	LeaveTypeName *string
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected || s == RequestStatusCancelled
}

type LeaveRequest struct {
	ID              string
	BusinessID      string
	EmployeeID      string
	LeaveTypeID     string
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       float64
	Reason          *string
	Status          RequestStatus
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName  *string
	LeaveTypeName *string
}
