package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/leave"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
	"github.com/lokabooks/bookkeeping-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.EntitlementRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepo leave.LeaveTypeRepository,
	entitlementRepo leave.EntitlementRepository,
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepo,
		EntitlementRepository:  entitlementRepo,
		LeaveRequestRepository: requestRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := l.LeaveTypeRepository.Create(ctx, leave.LeaveType{
		BusinessID:  ident.BusinessID,
		Name:        req.Name,
		Description: req.Description,
		DefaultDays: req.DefaultDays,
		IsPaid:      req.IsPaid,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return leave.LeaveTypeToResponse(created), nil
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := l.LeaveTypeRepository.List(ctx, ident.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.LeaveTypeToResponse(lt))
	}

	return responses, nil
}

// ListEntitlements implements leave.LeaveService. Staff see their own
// balances; admins may look up any employee.
func (l *LeaveServiceImpl) ListEntitlements(ctx context.Context, employeeID string, year int) ([]leave.EntitlementResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if employeeID == "" {
		if ident.EmployeeID == nil {
			return nil, employee.ErrEmployeeNotFound
		}
		employeeID = *ident.EmployeeID
	} else if !ident.IsAdmin() && (ident.EmployeeID == nil || *ident.EmployeeID != employeeID) {
		return nil, business.ErrAdminRequired
	}

	if year == 0 {
		year = time.Now().Year()
	}

	entitlements, err := l.EntitlementRepository.ListByEmployee(ctx, employeeID, year, ident.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave entitlements: %w", err)
	}

	responses := make([]leave.EntitlementResponse, 0, len(entitlements))
	for _, e := range entitlements {
		responses = append(responses, leave.EntitlementToResponse(e))
	}

	return responses, nil
}

// SetEntitlement implements leave.LeaveService.
func (l *LeaveServiceImpl) SetEntitlement(ctx context.Context, req leave.SetEntitlementRequest) (leave.EntitlementResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.EntitlementResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return leave.EntitlementResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID, ident.BusinessID)
	if err != nil {
		return leave.EntitlementResponse{}, err
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID, ident.BusinessID)
	if err != nil {
		return leave.EntitlementResponse{}, err
	}

	entitlement, err := l.EntitlementRepository.Upsert(ctx, leave.Entitlement{
		BusinessID:         ident.BusinessID,
		EmployeeID:         emp.ID,
		LeaveTypeID:        leaveType.ID,
		Year:               req.Year,
		TotalDays:          req.TotalDays,
		CarriedForwardDays: req.CarriedForwardDays,
	})
	if err != nil {
		return leave.EntitlementResponse{}, err
	}

	return leave.EntitlementToResponse(entitlement), nil
}

// requestDays counts the calendar days of a leave request, inclusive.
func requestDays(start, end time.Time) float64 {
	return end.Sub(start).Hours()/24 + 1
}

// CreateRequest implements leave.LeaveService. The balance is checked up
// front for a fast answer; the authoritative check happens on approval.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		if ident.EmployeeID == nil {
			return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
		}
		employeeID = *ident.EmployeeID
	} else if !ident.IsAdmin() && (ident.EmployeeID == nil || *ident.EmployeeID != employeeID) {
		return leave.LeaveRequestResponse{}, business.ErrAdminRequired
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID, ident.BusinessID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID, ident.BusinessID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	totalDays := requestDays(req.ParsedStartDate, req.ParsedEndDate)

	entitlement, err := l.EntitlementRepository.Get(ctx, emp.ID, leaveType.ID, req.ParsedStartDate.Year(), ident.BusinessID)
	if err == nil && entitlement.RemainingDays < totalDays {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		BusinessID:  ident.BusinessID,
		EmployeeID:  emp.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   req.ParsedStartDate,
		EndDate:     req.ParsedEndDate,
		TotalDays:   totalDays,
		Reason:      req.Reason,
		Status:      leave.RequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	created.LeaveTypeName = &leaveType.Name
	return leave.RequestToResponse(created), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequestResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	// Staff only ever see their own requests.
	if !ident.IsAdmin() {
		if ident.EmployeeID == nil {
			return nil, 0, employee.ErrEmployeeNotFound
		}
		filter.EmployeeID = ident.EmployeeID
	}

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter, ident.BusinessID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, leave.RequestToResponse(lr))
	}

	return responses, total, nil
}

// DecideRequest implements leave.LeaveService. Approval debits the year's
// entitlement and flips the status inside one transaction, so a failed
// debit leaves the request pending.
func (l *LeaveServiceImpl) DecideRequest(ctx context.Context, id string, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status.IsTerminal() {
		return leave.LeaveRequestResponse{}, leave.ErrRequestAlreadyClosed
	}

	now := time.Now()
	request.DecidedBy = ident.EmployeeID
	request.DecidedAt = &now

	if req.Action == "approve" {
		request.Status = leave.RequestStatusApproved
		err = postgresql.WithTransaction(ctx, l.db, func(txCtx context.Context) error {
			if _, err := l.EntitlementRepository.ApplyUsage(txCtx,
				request.EmployeeID, request.LeaveTypeID, request.StartDate.Year(),
				request.TotalDays, ident.BusinessID,
			); err != nil {
				return err
			}
			return l.LeaveRequestRepository.UpdateStatus(txCtx, request)
		})
	} else {
		request.Status = leave.RequestStatusRejected
		request.RejectionReason = req.RejectionReason
		err = l.LeaveRequestRepository.UpdateStatus(ctx, request)
	}
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.RequestToResponse(request), nil
}

// CancelRequest implements leave.LeaveService. Only the requester (or an
// admin) may cancel, and only while the request is still pending.
func (l *LeaveServiceImpl) CancelRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !ident.IsAdmin() && (ident.EmployeeID == nil || request.EmployeeID != *ident.EmployeeID) {
		return leave.LeaveRequestResponse{}, business.ErrAdminRequired
	}
	if request.Status.IsTerminal() {
		return leave.LeaveRequestResponse{}, leave.ErrRequestAlreadyClosed
	}

	now := time.Now()
	request.Status = leave.RequestStatusCancelled
	request.DecidedBy = ident.EmployeeID
	request.DecidedAt = &now

	if err := l.LeaveRequestRepository.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.RequestToResponse(request), nil
}
