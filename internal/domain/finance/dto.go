package finance

import (
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateIncomeRequest struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Source      *string `json:"source,omitempty"`

	// Parsed by Validate
	ParsedDate   time.Time       `json:"-"`
	ParsedAmount decimal.Decimal `json:"-"`
}

func (r *CreateIncomeRequest) Validate() error {
	var errs validator.ValidationErrors

	if date, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedDate = date
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if amount, valid := validator.IsValidMoney(r.Amount); !valid || amount.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive decimal",
		})
	} else {
		r.ParsedAmount = amount
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IncomeFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *IncomeFilter) Validate() error {
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

	for field, value := range map[string]*string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IncomeResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Source      *string `json:"source,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func IncomeToResponse(income Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID,
		Date:        income.Date.Format("2006-01-02"),
		Description: income.Description,
		Amount:      income.Amount.StringFixed(2),
		Source:      income.Source,
		CreatedAt:   income.CreatedAt.Format(time.RFC3339),
	}
}

type CharityAllocationResponse struct {
	ID        string `json:"id"`
	IncomeID  string `json:"income_id"`
	Date      string `json:"date"`
	Amount    string `json:"amount"`
	IsPaid    bool   `json:"is_paid"`
	CreatedAt string `json:"created_at"`
}

func CharityToResponse(alloc CharityAllocation) CharityAllocationResponse {
	return CharityAllocationResponse{
		ID:        alloc.ID,
		IncomeID:  alloc.IncomeID,
		Date:      alloc.Date.Format("2006-01-02"),
		Amount:    alloc.Amount.StringFixed(2),
		IsPaid:    alloc.IsPaid,
		CreatedAt: alloc.CreatedAt.Format(time.RFC3339),
	}
}

// IncomeWithCharityResponse is returned by the create-income operation,
// which persists both rows atomically.
type IncomeWithCharityResponse struct {
	Income  IncomeResponse            `json:"income"`
	Charity CharityAllocationResponse `json:"charity_allocation"`
}
