package finance

import "errors"

// Finance domain errors
var (
	ErrIncomeNotFound = errors.New("income record not found")
)
