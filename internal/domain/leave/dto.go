package leave

import (
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DefaultDays float64 `json:"default_days"`
	IsPaid      bool    `json:"is_paid"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.DefaultDays < 0 || r.DefaultDays > 366 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_days",
			Message: "default_days must be between 0 and 366",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveRequestRequest struct {
	EmployeeID  string  `json:"employee_id,omitempty"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason,omitempty"`

	// Parsed by Validate
	ParsedStartDate time.Time `json:"-"`
	ParsedEndDate   time.Time `json:"-"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if date, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedStartDate = date
	}

	if date, valid := validator.IsValidDate(r.EndDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedEndDate = date
	}

	if !r.ParsedStartDate.IsZero() && !r.ParsedEndDate.IsZero() && r.ParsedEndDate.Before(r.ParsedStartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetEntitlementRequest struct {
	EmployeeID         string  `json:"employee_id"`
	LeaveTypeID        string  `json:"leave_type_id"`
	Year               int     `json:"year"`
	TotalDays          float64 `json:"total_days"`
	CarriedForwardDays float64 `json:"carried_forward_days"`
}

func (r *SetEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit calendar year",
		})
	}

	if r.TotalDays < 0 || r.TotalDays > 366 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total_days must be between 0 and 366",
		})
	}

	if r.CarriedForwardDays < 0 || r.CarriedForwardDays > 366 {
		errs = append(errs, validator.ValidationError{
			Field:   "carried_forward_days",
			Message: "carried_forward_days must be between 0 and 366",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequestRequest struct {
	Action          string  `json:"action"` // approve | reject
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: approve, reject",
		})
	}

	if r.Action == "reject" && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestFilter struct {
	EmployeeID  *string `json:"employee_id,omitempty"`
	LeaveTypeID *string `json:"leave_type_id,omitempty"`
	Status      *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *RequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(RequestStatusPending),
		string(RequestStatusApproved),
		string(RequestStatusRejected),
		string(RequestStatusCancelled),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DefaultDays float64 `json:"default_days"`
	IsPaid      bool    `json:"is_paid"`
	CreatedAt   string  `json:"created_at"`
}

func LeaveTypeToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          lt.ID,
		Name:        lt.Name,
		Description: lt.Description,
		DefaultDays: lt.DefaultDays,
		IsPaid:      lt.IsPaid,
		CreatedAt:   lt.CreatedAt.Format(time.RFC3339),
	}
}

type EntitlementResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	LeaveTypeID        string  `json:"leave_type_id"`
	LeaveTypeName      *string `json:"leave_type_name,omitempty"`
	Year               int     `json:"year"`
	TotalDays          float64 `json:"total_days"`
	CarriedForwardDays float64 `json:"carried_forward_days"`
	UsedDays           float64 `json:"used_days"`
	RemainingDays      float64 `json:"remaining_days"`
}

func EntitlementToResponse(e Entitlement) EntitlementResponse {
	return EntitlementResponse{
		ID:                 e.ID,
		EmployeeID:         e.EmployeeID,
		LeaveTypeID:        e.LeaveTypeID,
		LeaveTypeName:      e.LeaveTypeName,
		Year:               e.Year,
		TotalDays:          e.TotalDays,
		CarriedForwardDays: e.CarriedForwardDays,
		UsedDays:           e.UsedDays,
		RemainingDays:      e.RemainingDays,
	}
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	LeaveTypeID     string  `json:"leave_type_id"`
	LeaveTypeName   *string `json:"leave_type_name,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       float64 `json:"total_days"`
	Reason          *string `json:"reason,omitempty"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func RequestToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		LeaveTypeID:     lr.LeaveTypeID,
		LeaveTypeName:   lr.LeaveTypeName,
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		TotalDays:       lr.TotalDays,
		Reason:          lr.Reason,
		Status:          string(lr.Status),
		RejectionReason: lr.RejectionReason,
		DecidedBy:       lr.DecidedBy,
		CreatedAt:       lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.DecidedAt != nil {
		s := lr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &s
	}
	return resp
}
