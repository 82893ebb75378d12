package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollNotFound     = errors.New("payroll record not found")
	ErrPeriodExists        = errors.New("a payroll record already exists for this employee and period")
	ErrRecordImmutable     = errors.New("paid payroll records cannot be modified or deleted")
	ErrInvalidTransition   = errors.New("payroll status can only move forward: draft, approved, paid")
	ErrPaymentDateRequired = errors.New("marking a payroll as paid requires a payment date")
)
