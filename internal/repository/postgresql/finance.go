package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/finance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

type financeRepository struct {
	db *database.DB
}

func NewFinanceRepository(db *database.DB) finance.FinanceRepository {
	return &financeRepository{db: db}
}

// CreateIncome implements finance.FinanceRepository.
func (r *financeRepository) CreateIncome(ctx context.Context, income finance.Income) (finance.Income, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO incomes (id, business_id, date, description, amount, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), income.BusinessID, income.Date, income.Description, income.Amount, income.Source,
	).Scan(&income.ID, &income.CreatedAt, &income.UpdatedAt)
	if err != nil {
		return finance.Income{}, fmt.Errorf("failed to create income: %w", err)
	}

	return income, nil
}

// CreateCharityAllocation implements finance.FinanceRepository.
func (r *financeRepository) CreateCharityAllocation(ctx context.Context, alloc finance.CharityAllocation) (finance.CharityAllocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO charity_allocations (id, business_id, income_id, date, amount, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), alloc.BusinessID, alloc.IncomeID, alloc.Date, alloc.Amount, alloc.IsPaid,
	).Scan(&alloc.ID, &alloc.CreatedAt, &alloc.UpdatedAt)
	if err != nil {
		return finance.CharityAllocation{}, fmt.Errorf("failed to create charity allocation: %w", err)
	}

	return alloc, nil
}

// ListIncomes implements finance.FinanceRepository.
func (r *financeRepository) ListIncomes(ctx context.Context, filter finance.IncomeFilter, businessID string) ([]finance.Income, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "business_id = $1"
	args := []interface{}{businessID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM incomes WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incomes: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, business_id, date, description, amount, source, created_at, updated_at
		FROM incomes
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incomes: %w", err)
	}
	defer rows.Close()

	var incomes []finance.Income
	for rows.Next() {
		var income finance.Income
		if err := rows.Scan(
			&income.ID, &income.BusinessID, &income.Date, &income.Description,
			&income.Amount, &income.Source, &income.CreatedAt, &income.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, income)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate incomes: %w", err)
	}

	return incomes, total, nil
}

// ListCharityAllocations implements finance.FinanceRepository.
func (r *financeRepository) ListCharityAllocations(ctx context.Context, filter finance.IncomeFilter, businessID string) ([]finance.CharityAllocation, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "business_id = $1"
	args := []interface{}{businessID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM charity_allocations WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count charity allocations: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, business_id, income_id, date, amount, is_paid, created_at, updated_at
		FROM charity_allocations
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list charity allocations: %w", err)
	}
	defer rows.Close()

	var allocations []finance.CharityAllocation
	for rows.Next() {
		var alloc finance.CharityAllocation
		if err := rows.Scan(
			&alloc.ID, &alloc.BusinessID, &alloc.IncomeID, &alloc.Date,
			&alloc.Amount, &alloc.IsPaid, &alloc.CreatedAt, &alloc.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan charity allocation: %w", err)
		}
		allocations = append(allocations, alloc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate charity allocations: %w", err)
	}

	return allocations, total, nil
}
