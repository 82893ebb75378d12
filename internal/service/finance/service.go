package finance

import (
	"context"
	"fmt"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/finance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
	"github.com/lokabooks/bookkeeping-backend-go/internal/repository/postgresql"
)

type FinanceServiceImpl struct {
	db *database.DB
	finance.FinanceRepository
	business.BusinessRepository
}

func NewFinanceService(
	db *database.DB,
	financeRepo finance.FinanceRepository,
	businessRepo business.BusinessRepository,
) finance.FinanceService {
	return &FinanceServiceImpl{
		db:                 db,
		FinanceRepository:  financeRepo,
		BusinessRepository: businessRepo,
	}
}

// CreateIncome implements finance.FinanceService. The income row and its
// charity allocation commit together or not at all.
func (f *FinanceServiceImpl) CreateIncome(ctx context.Context, req finance.CreateIncomeRequest) (finance.IncomeWithCharityResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.IncomeWithCharityResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return finance.IncomeWithCharityResponse{}, err
	}

	biz, err := f.BusinessRepository.GetByID(ctx, ident.BusinessID)
	if err != nil {
		return finance.IncomeWithCharityResponse{}, err
	}

	var income finance.Income
	var alloc finance.CharityAllocation

	err = postgresql.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		income, err = f.FinanceRepository.CreateIncome(txCtx, finance.Income{
			BusinessID:  ident.BusinessID,
			Date:        req.ParsedDate,
			Description: req.Description,
			Amount:      req.ParsedAmount.Round(2),
			Source:      req.Source,
		})
		if err != nil {
			return err
		}

		alloc, err = f.FinanceRepository.CreateCharityAllocation(txCtx, finance.CharityAllocation{
			BusinessID: ident.BusinessID,
			IncomeID:   income.ID,
			Date:       req.ParsedDate,
			Amount:     income.Amount.Mul(biz.CharityRate).Round(2),
		})
		return err
	})
	if err != nil {
		return finance.IncomeWithCharityResponse{}, fmt.Errorf("failed to record income: %w", err)
	}

	return finance.IncomeWithCharityResponse{
		Income:  finance.IncomeToResponse(income),
		Charity: finance.CharityToResponse(alloc),
	}, nil
}

// ListIncomes implements finance.FinanceService.
func (f *FinanceServiceImpl) ListIncomes(ctx context.Context, filter finance.IncomeFilter) ([]finance.IncomeResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	incomes, total, err := f.FinanceRepository.ListIncomes(ctx, filter, ident.BusinessID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incomes: %w", err)
	}

	responses := make([]finance.IncomeResponse, 0, len(incomes))
	for _, income := range incomes {
		responses = append(responses, finance.IncomeToResponse(income))
	}

	return responses, total, nil
}

// ListCharityLedger implements finance.FinanceService.
func (f *FinanceServiceImpl) ListCharityLedger(ctx context.Context, filter finance.IncomeFilter) ([]finance.CharityAllocationResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	allocations, total, err := f.FinanceRepository.ListCharityAllocations(ctx, filter, ident.BusinessID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list charity allocations: %w", err)
	}

	responses := make([]finance.CharityAllocationResponse, 0, len(allocations))
	for _, alloc := range allocations {
		responses = append(responses, finance.CharityToResponse(alloc))
	}

	return responses, total, nil
}
