package payroll

import (
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// PeriodTotals is the attendance aggregate a payroll record is built from.
type PeriodTotals struct {
	WorkingDays   int
	PresentDays   int
	TotalHours    float64
	OvertimeHours float64
}

// Aggregate sums the period's attendance rows. Only status present counts
// toward present days; late and half_day rows still contribute hours.
func Aggregate(rows []attendance.Attendance) PeriodTotals {
	var totals PeriodTotals
	for _, row := range rows {
		totals.WorkingDays++
		if row.Status == attendance.StatusPresent {
			totals.PresentDays++
		}
		totals.TotalHours += row.TotalHours
		totals.OvertimeHours += row.OvertimeHours
	}
	return totals
}

// BasicSalary derives the period's base pay from the employee's pay basis:
// monthly salaries are prorated over the calendar length of the month
// containing periodEnd, daily wages multiply present days, hourly rates
// multiply total hours.
func BasicSalary(emp employee.Employee, totals PeriodTotals, periodEnd time.Time) decimal.Decimal {
	switch emp.SalaryType {
	case employee.SalaryTypeDaily:
		wage := emp.BaseSalary
		if emp.DailyWage != nil && emp.DailyWage.IsPositive() {
			wage = *emp.DailyWage
		}
		return wage.Mul(decimal.NewFromInt(int64(totals.PresentDays))).Round(2)

	case employee.SalaryTypeHourly:
		rate := emp.BaseSalary
		if emp.HourlyRate != nil && emp.HourlyRate.IsPositive() {
			rate = *emp.HourlyRate
		}
		return rate.Mul(decimal.NewFromFloat(totals.TotalHours)).Round(2)

	default: // monthly
		daysInMonth := decimal.NewFromInt(int64(timeutil.DaysInMonth(periodEnd)))
		return emp.BaseSalary.
			Div(daysInMonth).
			Mul(decimal.NewFromInt(int64(totals.PresentDays))).
			Round(2)
	}
}

// OvertimeAmount prices the period's overtime hours at the employee's
// hourly-equivalent rate times the configured multiplier.
func OvertimeAmount(emp employee.Employee, overtimeHours float64, multiplier, impliedMonthlyHours decimal.Decimal) decimal.Decimal {
	if overtimeHours <= 0 {
		return decimal.Zero
	}
	return emp.HourlyEquivalentRate(impliedMonthlyHours).
		Mul(multiplier).
		Mul(decimal.NewFromFloat(overtimeHours)).
		Round(2)
}
