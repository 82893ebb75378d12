package employee

import (
	"strings"
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName    string  `json:"full_name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Position    *string `json:"position,omitempty"`
	HireDate    string  `json:"hire_date"`
	SalaryType  string  `json:"salary_type"`
	BaseSalary  string  `json:"base_salary"`
	DailyWage   *string `json:"daily_wage,omitempty"`
	HourlyRate  *string `json:"hourly_rate,omitempty"`

	// Parsed by Validate
	ParsedHireDate   time.Time        `json:"-"`
	ParsedBaseSalary decimal.Decimal  `json:"-"`
	ParsedDailyWage  *decimal.Decimal `json:"-"`
	ParsedHourlyRate *decimal.Decimal `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if date, valid := validator.IsValidDate(r.HireDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedHireDate = date
	}

	if !validator.IsInSlice(strings.ToLower(r.SalaryType), SalaryTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be one of: monthly, daily, hourly",
		})
	}

	if amount, valid := validator.IsValidMoney(r.BaseSalary); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be a non-negative decimal",
		})
	} else {
		r.ParsedBaseSalary = amount
	}

	if r.DailyWage != nil {
		if amount, valid := validator.IsValidMoney(*r.DailyWage); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "daily_wage",
				Message: "daily_wage must be a non-negative decimal",
			})
		} else {
			r.ParsedDailyWage = &amount
		}
	}

	if r.HourlyRate != nil {
		if amount, valid := validator.IsValidMoney(*r.HourlyRate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must be a non-negative decimal",
			})
		} else {
			r.ParsedHourlyRate = &amount
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Position    *string `json:"position,omitempty"`
	SalaryType  *string `json:"salary_type,omitempty"`
	BaseSalary  *string `json:"base_salary,omitempty"`
	DailyWage   *string `json:"daily_wage,omitempty"`
	HourlyRate  *string `json:"hourly_rate,omitempty"`
	Status      *string `json:"status,omitempty"`

	// Parsed by Validate
	ParsedBaseSalary *decimal.Decimal `json:"-"`
	ParsedDailyWage  *decimal.Decimal `json:"-"`
	ParsedHourlyRate *decimal.Decimal `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.SalaryType != nil && !validator.IsInSlice(strings.ToLower(*r.SalaryType), SalaryTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be one of: monthly, daily, hourly",
		})
	}

	if r.Status != nil && !validator.IsInSlice(strings.ToLower(*r.Status), StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, on_leave, terminated",
		})
	}

	if r.BaseSalary != nil {
		if amount, valid := validator.IsValidMoney(*r.BaseSalary); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a non-negative decimal",
			})
		} else {
			r.ParsedBaseSalary = &amount
		}
	}

	if r.DailyWage != nil {
		if amount, valid := validator.IsValidMoney(*r.DailyWage); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "daily_wage",
				Message: "daily_wage must be a non-negative decimal",
			})
		} else {
			r.ParsedDailyWage = &amount
		}
	}

	if r.HourlyRate != nil {
		if amount, valid := validator.IsValidMoney(*r.HourlyRate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must be a non-negative decimal",
			})
		} else {
			r.ParsedHourlyRate = &amount
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Name       *string `json:"name,omitempty"`
	Status     *string `json:"status,omitempty"`
	SalaryType *string `json:"salary_type,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
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
			Message: "status must be one of: active, inactive, on_leave, terminated",
		})
	}

	if f.SalaryType != nil && !validator.IsInSlice(*f.SalaryType, SalaryTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be one of: monthly, daily, hourly",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Position    *string `json:"position,omitempty"`
	HireDate    string  `json:"hire_date"`
	SalaryType  string  `json:"salary_type"`
	BaseSalary  string  `json:"base_salary"`
	DailyWage   *string `json:"daily_wage,omitempty"`
	HourlyRate  *string `json:"hourly_rate,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID,
		FullName:    e.FullName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Position:    e.Position,
		HireDate:    e.HireDate.Format("2006-01-02"),
		SalaryType:  string(e.SalaryType),
		BaseSalary:  e.BaseSalary.String(),
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
	if e.DailyWage != nil {
		s := e.DailyWage.String()
		resp.DailyWage = &s
	}
	if e.HourlyRate != nil {
		s := e.HourlyRate.String()
		resp.HourlyRate = &s
	}
	return resp
}
