package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

var StatusValues = []string{
	string(StatusDraft),
	string(StatusApproved),
	string(StatusPaid),
}

// CanTransitionTo encodes the forward-only status machine:
// draft -> approved -> paid, nothing out of paid.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusApproved
	case StatusApproved:
		return next == StatusPaid
	default:
		return false
	}
}

// IsImmutable reports whether edits and deletes must be rejected.
func (s Status) IsImmutable() bool {
	return s == StatusPaid
}

// Record is one payroll row per (employee, pay period). Uniqueness over
// (employee_id, pay_period_start, pay_period_end) is enforced by the store.
type Record struct {
	ID             string
	BusinessID     string
	EmployeeID     string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time

	BasicSalary    decimal.Decimal
	OvertimeAmount decimal.Decimal
	Bonus          decimal.Decimal
	Allowances     decimal.Decimal
	GrossSalary    decimal.Decimal

	TaxDeduction       decimal.Decimal
	InsuranceDeduction decimal.Decimal
	LoanDeduction      decimal.Decimal
	LeaveDeduction     decimal.Decimal
	OtherDeduction     decimal.Decimal
	TotalDeductions    decimal.Decimal

	NetSalary decimal.Decimal

	TotalWorkingDays   int
	TotalPresentDays   int
	TotalHours         float64
	TotalOvertimeHours float64

	Status      Status
	PaymentDate *time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

// Recalculate derives gross, total deductions and net from the component
// amounts, rounding every derived figure to 2 decimal places.
func (r *Record) Recalculate() {
	r.BasicSalary = r.BasicSalary.Round(2)
	r.OvertimeAmount = r.OvertimeAmount.Round(2)
	r.GrossSalary = r.BasicSalary.
		Add(r.OvertimeAmount).
		Add(r.Bonus).
		Add(r.Allowances).
		Round(2)
	r.TotalDeductions = r.TaxDeduction.
		Add(r.InsuranceDeduction).
		Add(r.LoanDeduction).
		Add(r.LeaveDeduction).
		Add(r.OtherDeduction).
		Round(2)
	r.NetSalary = r.GrossSalary.Sub(r.TotalDeductions).Round(2)
}
