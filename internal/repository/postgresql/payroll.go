package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/payroll"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.business_id, p.employee_id, p.pay_period_start, p.pay_period_end,
	p.basic_salary, p.overtime_amount, p.bonus, p.allowances, p.gross_salary,
	p.tax_deduction, p.insurance_deduction, p.loan_deduction, p.leave_deduction,
	p.other_deduction, p.total_deductions, p.net_salary,
	p.total_working_days, p.total_present_days, p.total_hours, p.total_overtime_hours,
	p.status, p.payment_date, p.notes, p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row, withEmployeeName bool) (payroll.Record, error) {
	var rec payroll.Record
	dest := []interface{}{
		&rec.ID, &rec.BusinessID, &rec.EmployeeID, &rec.PayPeriodStart, &rec.PayPeriodEnd,
		&rec.BasicSalary, &rec.OvertimeAmount, &rec.Bonus, &rec.Allowances, &rec.GrossSalary,
		&rec.TaxDeduction, &rec.InsuranceDeduction, &rec.LoanDeduction, &rec.LeaveDeduction,
		&rec.OtherDeduction, &rec.TotalDeductions, &rec.NetSalary,
		&rec.TotalWorkingDays, &rec.TotalPresentDays, &rec.TotalHours, &rec.TotalOvertimeHours,
		&rec.Status, &rec.PaymentDate, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployeeName {
		dest = append(dest, &rec.EmployeeName)
	}
	err := row.Scan(dest...)
	return rec, err
}

// Create implements payroll.PayrollRepository. The unique index over
// (employee_id, pay_period_start, pay_period_end) turns a duplicate period
// into ErrPeriodExists.
func (r *payrollRepository) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, business_id, employee_id, pay_period_start, pay_period_end,
			basic_salary, overtime_amount, bonus, allowances, gross_salary,
			tax_deduction, insurance_deduction, loan_deduction, leave_deduction,
			other_deduction, total_deductions, net_salary,
			total_working_days, total_present_days, total_hours, total_overtime_hours,
			status, payment_date, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), rec.BusinessID, rec.EmployeeID, rec.PayPeriodStart, rec.PayPeriodEnd,
		rec.BasicSalary, rec.OvertimeAmount, rec.Bonus, rec.Allowances, rec.GrossSalary,
		rec.TaxDeduction, rec.InsuranceDeduction, rec.LoanDeduction, rec.LeaveDeduction,
		rec.OtherDeduction, rec.TotalDeductions, rec.NetSalary,
		rec.TotalWorkingDays, rec.TotalPresentDays, rec.TotalHours, rec.TotalOvertimeHours,
		rec.Status, rec.PaymentDate, rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "uk_payrolls_employee_period") {
			return payroll.Record{}, payroll.ErrPeriodExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return rec, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string, businessID string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `, e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.business_id = $2
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id, businessID), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll by ID: %w", err)
	}

	return rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter, businessID string) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "p.business_id = $1"
	args := []interface{}{businessID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND p.pay_period_start >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND p.pay_period_end <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.pay_period_start DESC, e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, payrollColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return records, total, nil
}

// Update implements payroll.PayrollRepository. Immutability of paid records
// is enforced by the service before calling; the store writes whatever the
// service passes.
func (r *payrollRepository) Update(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls p
		SET basic_salary = $3, overtime_amount = $4, bonus = $5, allowances = $6,
			gross_salary = $7, tax_deduction = $8, insurance_deduction = $9,
			loan_deduction = $10, leave_deduction = $11, other_deduction = $12,
			total_deductions = $13, net_salary = $14,
			total_working_days = $15, total_present_days = $16,
			total_hours = $17, total_overtime_hours = $18,
			status = $19, payment_date = $20, notes = $21, updated_at = NOW()
		WHERE p.id = $1 AND p.business_id = $2
		RETURNING ` + payrollColumns

	updated, err := scanPayroll(q.QueryRow(ctx, query,
		rec.ID, rec.BusinessID,
		rec.BasicSalary, rec.OvertimeAmount, rec.Bonus, rec.Allowances,
		rec.GrossSalary, rec.TaxDeduction, rec.InsuranceDeduction,
		rec.LoanDeduction, rec.LeaveDeduction, rec.OtherDeduction,
		rec.TotalDeductions, rec.NetSalary,
		rec.TotalWorkingDays, rec.TotalPresentDays,
		rec.TotalHours, rec.TotalOvertimeHours,
		rec.Status, rec.PaymentDate, rec.Notes,
	), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to update payroll: %w", err)
	}

	updated.EmployeeName = rec.EmployeeName
	return updated, nil
}

// Delete implements payroll.PayrollRepository. Paid records are immutable;
// the status guard lives in the WHERE clause.
func (r *payrollRepository) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payrolls
		WHERE id = $1 AND business_id = $2 AND status <> 'paid'
	`

	tag, err := q.Exec(ctx, query, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id, businessID); getErr != nil {
			return getErr
		}
		return payroll.ErrRecordImmutable
	}

	return nil
}
