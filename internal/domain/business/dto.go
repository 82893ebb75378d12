package business

import (
	"time"

	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateBusinessRequest struct {
	Name        *string `json:"name,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	CharityRate *string `json:"charity_rate,omitempty"`

	// Parsed by Validate
	ParsedCharityRate *decimal.Decimal `json:"-"`
}

func (r *UpdateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Timezone != nil {
		if _, err := time.LoadLocation(*r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: "timezone must be a valid IANA timezone name",
			})
		}
	}

	if r.CharityRate != nil {
		rate, err := decimal.NewFromString(*r.CharityRate)
		if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{
				Field:   "charity_rate",
				Message: "charity_rate must be a decimal between 0 and 1",
			})
		} else {
			r.ParsedCharityRate = &rate
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BusinessResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Timezone    string `json:"timezone"`
	CharityRate string `json:"charity_rate"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func ToResponse(b Business) BusinessResponse {
	return BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Timezone:    b.Timezone,
		CharityRate: b.CharityRate.String(),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}
