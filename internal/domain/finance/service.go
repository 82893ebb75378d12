package finance

import "context"

// FinanceService defines business logic for the income and charity ledgers
type FinanceService interface {
	// CreateIncome records an income and its mandatory charity allocation
	// atomically
	CreateIncome(ctx context.Context, req CreateIncomeRequest) (IncomeWithCharityResponse, error)

	ListIncomes(ctx context.Context, filter IncomeFilter) ([]IncomeResponse, int64, error)
	ListCharityLedger(ctx context.Context, filter IncomeFilter) ([]CharityAllocationResponse, int64, error)
}
