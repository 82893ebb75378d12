package employee

import "context"

// EmployeeRepository defines data access for employees. All methods take
// businessID to prevent cross-business data access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, businessID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter, businessID string) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) (Employee, error)

	// SoftDelete marks the employee deleted; attendance and payroll rows
	// keep referencing it.
	SoftDelete(ctx context.Context, id string, businessID string) error
}
