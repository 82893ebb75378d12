// Package identity reads the authenticated caller out of JWT claims placed
// on the request context by the jwtauth verifier.
package identity

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
)

// Identity is the caller extracted from token claims. EmployeeID is nil for
// business-owner tokens that are not tied to an employee record.
type Identity struct {
	BusinessID string
	EmployeeID *string
	Role       business.Role
}

// FromContext extracts the caller identity from the request context. It
// fails with business.ErrInvalidToken when the token or the business_id
// claim is missing.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, business.ErrInvalidToken
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return Identity{}, business.ErrInvalidToken
	}

	ident := Identity{BusinessID: businessID, Role: business.RoleStaff}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		ident.EmployeeID = &employeeID
	}

	if role, ok := claims["role"].(string); ok && role != "" {
		ident.Role = business.Role(role)
	}

	return ident, nil
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == business.RoleAdmin
}
