package response

import (
	"errors"
	"net/http"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/finance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/leave"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/payroll"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/schedule"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Business domain errors
	case errors.Is(err, business.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, business.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, business.ErrBusinessNotFound):
		NotFound(w, "Business not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is not active")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this business")
	case errors.Is(err, employee.ErrEmployeeReferenced):
		Conflict(w, "Employee has attendance or payroll history")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrScheduleOverlap):
		Conflict(w, "An overlapping work schedule already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Attendance already recorded for this date")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance record for today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Attendance already has a clock-out time")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrRuleNotFound):
		NotFound(w, "Attendance rule not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeExists):
		Conflict(w, "Leave type with this name already exists")
	case errors.Is(err, leave.ErrEntitlementNotFound):
		NotFound(w, "Leave entitlement not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		Conflict(w, "Insufficient leave balance")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyClosed):
		Conflict(w, "Leave request has already been processed")
	case errors.Is(err, leave.ErrRejectionReasonRequired):
		ValidationError(w, map[string]string{"rejection_reason": "rejection requires a reason"})

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPeriodExists):
		Conflict(w, "A payroll record already exists for this employee and period")
	case errors.Is(err, payroll.ErrRecordImmutable):
		Conflict(w, "Paid payroll records cannot be modified or deleted")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payroll status can only move forward: draft, approved, paid")
	case errors.Is(err, payroll.ErrPaymentDateRequired):
		ValidationError(w, map[string]string{"payment_date": "marking a payroll as paid requires a payment date"})

	// Finance domain errors
	case errors.Is(err, finance.ErrIncomeNotFound):
		NotFound(w, "Income record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
