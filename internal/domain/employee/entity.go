package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	BusinessID   string
	FullName     string
	Email        *string
	PhoneNumber  *string
	Position     *string
	HireDate     time.Time
	SalaryType   SalaryType
	BaseSalary   decimal.Decimal
	DailyWage    *decimal.Decimal
	HourlyRate   *decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// SalaryType is the pay basis an employee is paid by.
type SalaryType string

const (
	SalaryTypeMonthly SalaryType = "monthly"
	SalaryTypeDaily   SalaryType = "daily"
	SalaryTypeHourly  SalaryType = "hourly"
)

var SalaryTypeValues = []string{
	string(SalaryTypeMonthly),
	string(SalaryTypeDaily),
	string(SalaryTypeHourly),
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusOnLeave),
	string(StatusTerminated),
}

// HourlyEquivalentRate returns the rate used for overtime pay: the explicit
// hourly rate when present, otherwise base salary spread over
// impliedMonthlyHours.
func (e Employee) HourlyEquivalentRate(impliedMonthlyHours decimal.Decimal) decimal.Decimal {
	if e.HourlyRate != nil && e.HourlyRate.IsPositive() {
		return *e.HourlyRate
	}
	return e.BaseSalary.Div(impliedMonthlyHours)
}
