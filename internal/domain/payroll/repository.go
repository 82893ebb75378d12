package payroll

import "context"

// PayrollRepository defines data access for payroll records. The
// one-row-per-(employee, period) invariant is enforced by a unique index,
// not by check-then-insert.
type PayrollRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string, businessID string) (Record, error)
	List(ctx context.Context, filter Filter, businessID string) ([]Record, int64, error)
	Update(ctx context.Context, rec Record) (Record, error)
	Delete(ctx context.Context, id string, businessID string) error
}
