package payroll

import (
	"context"
	"fmt"

	"github.com/lokabooks/bookkeeping-backend-go/internal/config"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/payroll"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	payrollConfig config.PayrollConfig
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	payrollConfig config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		payrollConfig:        payrollConfig,
	}
}

// CreatePayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) CreatePayroll(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID, ident.BusinessID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec := payroll.Record{
		BusinessID:         ident.BusinessID,
		EmployeeID:         emp.ID,
		PayPeriodStart:     req.ParsedPeriodStart,
		PayPeriodEnd:       req.ParsedPeriodEnd,
		Bonus:              req.ParsedAmounts.Bonus,
		Allowances:         req.ParsedAmounts.Allowances,
		TaxDeduction:       req.ParsedAmounts.TaxDeduction,
		InsuranceDeduction: req.ParsedAmounts.InsuranceDeduction,
		LoanDeduction:      req.ParsedAmounts.LoanDeduction,
		LeaveDeduction:     req.ParsedAmounts.LeaveDeduction,
		OtherDeduction:     req.ParsedAmounts.OtherDeduction,
		Status:             payroll.StatusDraft,
		Notes:              req.Notes,
	}

	if req.AutoCalculate {
		rows, err := p.AttendanceRepository.ListForPeriod(ctx, emp.ID, req.ParsedPeriodStart, req.ParsedPeriodEnd, ident.BusinessID)
		if err != nil {
			return payroll.PayrollResponse{}, fmt.Errorf("failed to list attendance for period: %w", err)
		}

		totals := Aggregate(rows)
		rec.TotalWorkingDays = totals.WorkingDays
		rec.TotalPresentDays = totals.PresentDays
		rec.TotalHours = totals.TotalHours
		rec.TotalOvertimeHours = totals.OvertimeHours
		rec.BasicSalary = BasicSalary(emp, totals, req.ParsedPeriodEnd)
		rec.OvertimeAmount = OvertimeAmount(emp, totals.OvertimeHours,
			p.payrollConfig.OvertimeMultiplier, p.payrollConfig.ImpliedMonthlyHours)
	} else {
		rec.BasicSalary = req.ParsedBasicSalary
	}

	rec.Recalculate()

	created, err := p.PayrollRepository.Create(ctx, rec)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return payroll.ToResponse(created), nil
}

// GetPayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := p.PayrollRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(rec), nil
}

// ListPayrolls implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	records, total, err := p.PayrollRepository.List(ctx, filter, ident.BusinessID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.ToResponse(rec))
	}

	return responses, total, nil
}

// UpdatePayroll implements payroll.PayrollService. Paid records reject all
// edits.
func (p *PayrollServiceImpl) UpdatePayroll(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := p.PayrollRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if rec.Status.IsImmutable() {
		return payroll.PayrollResponse{}, payroll.ErrRecordImmutable
	}

	for field, amount := range req.Parsed {
		switch field {
		case "bonus":
			rec.Bonus = amount
		case "allowances":
			rec.Allowances = amount
		case "tax_deduction":
			rec.TaxDeduction = amount
		case "insurance_deduction":
			rec.InsuranceDeduction = amount
		case "loan_deduction":
			rec.LoanDeduction = amount
		case "leave_deduction":
			rec.LeaveDeduction = amount
		case "other_deduction":
			rec.OtherDeduction = amount
		}
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	rec.Recalculate()

	updated, err := p.PayrollRepository.Update(ctx, rec)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated.EmployeeName = rec.EmployeeName
	return payroll.ToResponse(updated), nil
}

// TransitionPayroll implements payroll.PayrollService. The status machine
// only moves forward; marking paid requires a payment date.
func (p *PayrollServiceImpl) TransitionPayroll(ctx context.Context, id string, req payroll.TransitionPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := p.PayrollRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	next := payroll.Status(req.Status)
	if !rec.Status.CanTransitionTo(next) {
		return payroll.PayrollResponse{}, payroll.ErrInvalidTransition
	}

	if next == payroll.StatusPaid {
		if req.ParsedPaymentDate == nil {
			return payroll.PayrollResponse{}, payroll.ErrPaymentDateRequired
		}
		rec.PaymentDate = req.ParsedPaymentDate
	}
	rec.Status = next

	updated, err := p.PayrollRepository.Update(ctx, rec)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated.EmployeeName = rec.EmployeeName
	return payroll.ToResponse(updated), nil
}

// DeletePayroll implements payroll.PayrollService. Paid records cannot go.
func (p *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	return p.PayrollRepository.Delete(ctx, id, ident.BusinessID)
}
