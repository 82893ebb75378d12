package finance

import "context"

// FinanceRepository persists incomes and their charity allocations.
// CreateIncome and CreateCharityAllocation are called inside one
// transaction by the service; neither commits on its own.
type FinanceRepository interface {
	CreateIncome(ctx context.Context, income Income) (Income, error)
	CreateCharityAllocation(ctx context.Context, alloc CharityAllocation) (CharityAllocation, error)
	ListIncomes(ctx context.Context, filter IncomeFilter, businessID string) ([]Income, int64, error)
	ListCharityAllocations(ctx context.Context, filter IncomeFilter, businessID string) ([]CharityAllocation, int64, error)
}
