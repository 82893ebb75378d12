package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusDraft.CanTransitionTo(StatusApproved))
	assert.True(t, StatusApproved.CanTransitionTo(StatusPaid))

	assert.False(t, StatusDraft.CanTransitionTo(StatusPaid))
	assert.False(t, StatusApproved.CanTransitionTo(StatusDraft))
	assert.False(t, StatusPaid.CanTransitionTo(StatusDraft))
	assert.False(t, StatusPaid.CanTransitionTo(StatusApproved))
	assert.False(t, StatusDraft.CanTransitionTo(StatusDraft))
}

func TestStatusIsImmutable(t *testing.T) {
	t.Parallel()
	assert.False(t, StatusDraft.IsImmutable())
	assert.False(t, StatusApproved.IsImmutable())
	assert.True(t, StatusPaid.IsImmutable())
}

func TestRecordRecalculate(t *testing.T) {
	t.Parallel()
	r := Record{
		BasicSalary:        decimal.RequireFromString("1800"),
		OvertimeAmount:     decimal.RequireFromString("60"),
		Bonus:              decimal.RequireFromString("100"),
		Allowances:         decimal.RequireFromString("40"),
		TaxDeduction:       decimal.RequireFromString("150"),
		InsuranceDeduction: decimal.RequireFromString("50"),
	}

	r.Recalculate()

	assert.True(t, r.GrossSalary.Equal(decimal.RequireFromString("2000")), "gross %s", r.GrossSalary)
	assert.True(t, r.TotalDeductions.Equal(decimal.RequireFromString("200")), "deductions %s", r.TotalDeductions)
	assert.True(t, r.NetSalary.Equal(decimal.RequireFromString("1800")), "net %s", r.NetSalary)
}

func TestRecordRecalculateRoundsComponents(t *testing.T) {
	t.Parallel()
	r := Record{
		BasicSalary:    decimal.RequireFromString("1645.161"),
		OvertimeAmount: decimal.RequireFromString("60.005"),
	}

	r.Recalculate()

	assert.True(t, r.BasicSalary.Equal(decimal.RequireFromString("1645.16")), "basic %s", r.BasicSalary)
	assert.True(t, r.OvertimeAmount.Equal(decimal.RequireFromString("60.01")), "overtime %s", r.OvertimeAmount)
	assert.True(t, r.GrossSalary.Equal(decimal.RequireFromString("1705.17")), "gross %s", r.GrossSalary)
}
