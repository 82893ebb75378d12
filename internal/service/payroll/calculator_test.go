package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
)

func monthlyEmployee(base string) employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		BusinessID: "biz-1",
		FullName:   "Sari Wijaya",
		SalaryType: employee.SalaryTypeMonthly,
		BaseSalary: decimal.RequireFromString(base),
	}
}

func TestAggregate_OnlyPresentCountsTowardPresentDays(t *testing.T) {
	t.Parallel()
	rows := []attendance.Attendance{
		{Status: attendance.StatusPresent, TotalHours: 8, OvertimeHours: 1},
		{Status: attendance.StatusLate, TotalHours: 7.5},
		{Status: attendance.StatusHalfDay, TotalHours: 3.5},
		{Status: attendance.StatusPresent, TotalHours: 8},
	}

	totals := Aggregate(rows)
	assert.Equal(t, 4, totals.WorkingDays)
	assert.Equal(t, 2, totals.PresentDays)
	assert.InDelta(t, 27.0, totals.TotalHours, 1e-9)
	assert.InDelta(t, 1.0, totals.OvertimeHours, 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()
	totals := Aggregate(nil)
	assert.Equal(t, PeriodTotals{}, totals)
}

func TestBasicSalary_MonthlyProration(t *testing.T) {
	t.Parallel()
	// 3000 over a 30-day June, 18 present days: 3000/30*18 = 1800.00
	emp := monthlyEmployee("3000")
	periodEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	got := BasicSalary(emp, PeriodTotals{PresentDays: 18}, periodEnd)
	assert.True(t, got.Equal(decimal.RequireFromString("1800")), "got %s", got)
}

func TestBasicSalary_MonthlyRoundsToCents(t *testing.T) {
	t.Parallel()
	// 3000 over a 31-day July, 17 present days: 1645.161... -> 1645.16
	emp := monthlyEmployee("3000")
	periodEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	got := BasicSalary(emp, PeriodTotals{PresentDays: 17}, periodEnd)
	assert.True(t, got.Equal(decimal.RequireFromString("1645.16")), "got %s", got)
}

func TestBasicSalary_DailyUsesWageAndPresentDays(t *testing.T) {
	t.Parallel()
	wage := decimal.RequireFromString("120")
	emp := monthlyEmployee("0")
	emp.SalaryType = employee.SalaryTypeDaily
	emp.DailyWage = &wage

	got := BasicSalary(emp, PeriodTotals{PresentDays: 20, TotalHours: 160}, time.Now())
	assert.True(t, got.Equal(decimal.RequireFromString("2400")), "got %s", got)
}

func TestBasicSalary_DailyFallsBackToBaseSalary(t *testing.T) {
	t.Parallel()
	emp := monthlyEmployee("100")
	emp.SalaryType = employee.SalaryTypeDaily

	got := BasicSalary(emp, PeriodTotals{PresentDays: 10}, time.Now())
	assert.True(t, got.Equal(decimal.RequireFromString("1000")), "got %s", got)
}

func TestBasicSalary_HourlyUsesTotalHours(t *testing.T) {
	t.Parallel()
	rate := decimal.RequireFromString("25")
	emp := monthlyEmployee("0")
	emp.SalaryType = employee.SalaryTypeHourly
	emp.HourlyRate = &rate

	got := BasicSalary(emp, PeriodTotals{PresentDays: 5, TotalHours: 42.5}, time.Now())
	assert.True(t, got.Equal(decimal.RequireFromString("1062.50")), "got %s", got)
}

func TestOvertimeAmount_ExplicitHourlyRate(t *testing.T) {
	t.Parallel()
	rate := decimal.RequireFromString("20")
	emp := monthlyEmployee("0")
	emp.HourlyRate = &rate

	got := OvertimeAmount(emp, 4, decimal.RequireFromString("1.5"), decimal.RequireFromString("160"))
	assert.True(t, got.Equal(decimal.RequireFromString("120")), "got %s", got)
}

func TestOvertimeAmount_ImpliedRateFromMonthlySalary(t *testing.T) {
	t.Parallel()
	// 3200/160 = 20 per hour, * 1.5 * 2h = 60.00
	emp := monthlyEmployee("3200")

	got := OvertimeAmount(emp, 2, decimal.RequireFromString("1.5"), decimal.RequireFromString("160"))
	assert.True(t, got.Equal(decimal.RequireFromString("60")), "got %s", got)
}

func TestOvertimeAmount_ZeroHours(t *testing.T) {
	t.Parallel()
	emp := monthlyEmployee("3200")

	got := OvertimeAmount(emp, 0, decimal.RequireFromString("1.5"), decimal.RequireFromString("160"))
	assert.True(t, got.IsZero())
}
