package payroll

import (
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID     string `json:"employee_id"`
	PayPeriodStart string `json:"pay_period_start"`
	PayPeriodEnd   string `json:"pay_period_end"`

	Bonus              *string `json:"bonus,omitempty"`
	Allowances         *string `json:"allowances,omitempty"`
	TaxDeduction       *string `json:"tax_deduction,omitempty"`
	InsuranceDeduction *string `json:"insurance_deduction,omitempty"`
	LoanDeduction      *string `json:"loan_deduction,omitempty"`
	LeaveDeduction     *string `json:"leave_deduction,omitempty"`
	OtherDeduction     *string `json:"other_deduction,omitempty"`

	// AutoCalculate derives basic salary and overtime from attendance;
	// when false, BasicSalary must be supplied.
	AutoCalculate bool    `json:"auto_calculate"`
	BasicSalary   *string `json:"basic_salary,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	// Parsed by Validate
	ParsedPeriodStart time.Time       `json:"-"`
	ParsedPeriodEnd   time.Time       `json:"-"`
	ParsedAmounts     ParsedAmounts   `json:"-"`
	ParsedBasicSalary decimal.Decimal `json:"-"`
}

type ParsedAmounts struct {
	Bonus              decimal.Decimal
	Allowances         decimal.Decimal
	TaxDeduction       decimal.Decimal
	InsuranceDeduction decimal.Decimal
	LoanDeduction      decimal.Decimal
	LeaveDeduction     decimal.Decimal
	OtherDeduction     decimal.Decimal
}

func parseOptionalAmount(errs *validator.ValidationErrors, field string, value *string) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	amount, valid := validator.IsValidMoney(*value)
	if !valid {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be a non-negative decimal",
		})
		return decimal.Zero
	}
	return amount
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if date, valid := validator.IsValidDate(r.PayPeriodStart); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_start",
			Message: "pay_period_start must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedPeriodStart = date
	}

	if date, valid := validator.IsValidDate(r.PayPeriodEnd); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_end",
			Message: "pay_period_end must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedPeriodEnd = date
	}

	if !r.ParsedPeriodStart.IsZero() && !r.ParsedPeriodEnd.IsZero() && r.ParsedPeriodEnd.Before(r.ParsedPeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_end",
			Message: "pay_period_end must not be before pay_period_start",
		})
	}

	r.ParsedAmounts = ParsedAmounts{
		Bonus:              parseOptionalAmount(&errs, "bonus", r.Bonus),
		Allowances:         parseOptionalAmount(&errs, "allowances", r.Allowances),
		TaxDeduction:       parseOptionalAmount(&errs, "tax_deduction", r.TaxDeduction),
		InsuranceDeduction: parseOptionalAmount(&errs, "insurance_deduction", r.InsuranceDeduction),
		LoanDeduction:      parseOptionalAmount(&errs, "loan_deduction", r.LoanDeduction),
		LeaveDeduction:     parseOptionalAmount(&errs, "leave_deduction", r.LeaveDeduction),
		OtherDeduction:     parseOptionalAmount(&errs, "other_deduction", r.OtherDeduction),
	}

	if !r.AutoCalculate {
		if r.BasicSalary == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "basic_salary",
				Message: "basic_salary is required when auto_calculate is false",
			})
		} else if amount, valid := validator.IsValidMoney(*r.BasicSalary); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "basic_salary",
				Message: "basic_salary must be a non-negative decimal",
			})
		} else {
			r.ParsedBasicSalary = amount
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePayrollRequest struct {
	Bonus              *string `json:"bonus,omitempty"`
	Allowances         *string `json:"allowances,omitempty"`
	TaxDeduction       *string `json:"tax_deduction,omitempty"`
	InsuranceDeduction *string `json:"insurance_deduction,omitempty"`
	LoanDeduction      *string `json:"loan_deduction,omitempty"`
	LeaveDeduction     *string `json:"leave_deduction,omitempty"`
	OtherDeduction     *string `json:"other_deduction,omitempty"`
	Notes              *string `json:"notes,omitempty"`

	// Parsed by Validate; nil means unchanged
	Parsed map[string]decimal.Decimal `json:"-"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Parsed = make(map[string]decimal.Decimal)
	for field, value := range map[string]*string{
		"bonus":               r.Bonus,
		"allowances":          r.Allowances,
		"tax_deduction":       r.TaxDeduction,
		"insurance_deduction": r.InsuranceDeduction,
		"loan_deduction":      r.LoanDeduction,
		"leave_deduction":     r.LeaveDeduction,
		"other_deduction":     r.OtherDeduction,
	} {
		if value == nil {
			continue
		}
		amount, valid := validator.IsValidMoney(*value)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a non-negative decimal",
			})
			continue
		}
		r.Parsed[field] = amount
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransitionPayrollRequest struct {
	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"`

	// Parsed by Validate
	ParsedPaymentDate *time.Time `json:"-"`
}

func (r *TransitionPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, approved, paid",
		})
	}

	if r.PaymentDate != nil {
		if date, valid := validator.IsValidDate(*r.PaymentDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date must be in YYYY-MM-DD format",
			})
		} else {
			r.ParsedPaymentDate = &date
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD, matches pay_period_start
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD, matches pay_period_end

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
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

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, approved, paid",
		})
	}

	for field, value := range map[string]*string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	PayPeriodStart string  `json:"pay_period_start"`
	PayPeriodEnd   string  `json:"pay_period_end"`

	BasicSalary    string `json:"basic_salary"`
	OvertimeAmount string `json:"overtime_amount"`
	Bonus          string `json:"bonus"`
	Allowances     string `json:"allowances"`
	GrossSalary    string `json:"gross_salary"`

	TaxDeduction       string `json:"tax_deduction"`
	InsuranceDeduction string `json:"insurance_deduction"`
	LoanDeduction      string `json:"loan_deduction"`
	LeaveDeduction     string `json:"leave_deduction"`
	OtherDeduction     string `json:"other_deduction"`
	TotalDeductions    string `json:"total_deductions"`

	NetSalary string `json:"net_salary"`

	TotalWorkingDays   int     `json:"total_working_days"`
	TotalPresentDays   int     `json:"total_present_days"`
	TotalHours         float64 `json:"total_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`

	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(rec Record) PayrollResponse {
	resp := PayrollResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		EmployeeName:       rec.EmployeeName,
		PayPeriodStart:     rec.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:       rec.PayPeriodEnd.Format("2006-01-02"),
		BasicSalary:        rec.BasicSalary.StringFixed(2),
		OvertimeAmount:     rec.OvertimeAmount.StringFixed(2),
		Bonus:              rec.Bonus.StringFixed(2),
		Allowances:         rec.Allowances.StringFixed(2),
		GrossSalary:        rec.GrossSalary.StringFixed(2),
		TaxDeduction:       rec.TaxDeduction.StringFixed(2),
		InsuranceDeduction: rec.InsuranceDeduction.StringFixed(2),
		LoanDeduction:      rec.LoanDeduction.StringFixed(2),
		LeaveDeduction:     rec.LeaveDeduction.StringFixed(2),
		OtherDeduction:     rec.OtherDeduction.StringFixed(2),
		TotalDeductions:    rec.TotalDeductions.StringFixed(2),
		NetSalary:          rec.NetSalary.StringFixed(2),
		TotalWorkingDays:   rec.TotalWorkingDays,
		TotalPresentDays:   rec.TotalPresentDays,
		TotalHours:         rec.TotalHours,
		TotalOvertimeHours: rec.TotalOvertimeHours,
		Status:             string(rec.Status),
		Notes:              rec.Notes,
		CreatedAt:          rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.PaymentDate != nil {
		s := rec.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &s
	}
	return resp
}
