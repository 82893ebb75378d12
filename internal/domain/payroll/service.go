package payroll

import "context"

// PayrollService defines business logic for payroll records
type PayrollService interface {
	// CreatePayroll creates a draft record, deriving basic salary and
	// overtime from attendance when auto_calculate is set
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)

	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter Filter) ([]PayrollResponse, int64, error)
	UpdatePayroll(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)

	// TransitionPayroll moves the record forward through
	// draft -> approved -> paid
	TransitionPayroll(ctx context.Context, id string, req TransitionPayrollRequest) (PayrollResponse, error)

	// DeletePayroll removes a record unless it has been paid
	DeletePayroll(ctx context.Context, id string) error
}
