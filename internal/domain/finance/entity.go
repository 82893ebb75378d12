package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single income ledger row. Every income spawns a charity
// allocation in the same transaction.
type Income struct {
	ID          string
	BusinessID  string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Source      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CharityAllocation is the mandatory set-aside derived from an income:
// amount = income amount x the business charity rate, rounded to 2 places.
type CharityAllocation struct {
	ID         string
	BusinessID string
	IncomeID   string
	Date       time.Time
	Amount     decimal.Decimal
	IsPaid     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
