package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/leave"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

type entitlementRepository struct {
	db *database.DB
}

func NewEntitlementRepository(db *database.DB) leave.EntitlementRepository {
	return &entitlementRepository{db: db}
}

const entitlementColumns = `
	le.id, le.business_id, le.employee_id, le.leave_type_id, le.year,
	le.total_days, le.carried_forward_days, le.used_days, le.remaining_days,
	le.created_at, le.updated_at
`

func scanEntitlement(row pgx.Row, withTypeName bool) (leave.Entitlement, error) {
	var e leave.Entitlement
	dest := []interface{}{
		&e.ID, &e.BusinessID, &e.EmployeeID, &e.LeaveTypeID, &e.Year,
		&e.TotalDays, &e.CarriedForwardDays, &e.UsedDays, &e.RemainingDays,
		&e.CreatedAt, &e.UpdatedAt,
	}
	if withTypeName {
		dest = append(dest, &e.LeaveTypeName)
	}
	err := row.Scan(dest...)
	return e, err
}

// Upsert implements leave.EntitlementRepository. remaining_days is always
// recomputed from the other columns, never written directly.
func (r *entitlementRepository) Upsert(ctx context.Context, e leave.Entitlement) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_entitlements (
			id, business_id, employee_id, leave_type_id, year,
			total_days, carried_forward_days, used_days, remaining_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $6 + $7 - $8)
		ON CONFLICT (employee_id, leave_type_id, year) DO UPDATE SET
			total_days = EXCLUDED.total_days,
			carried_forward_days = EXCLUDED.carried_forward_days,
			remaining_days = EXCLUDED.total_days + EXCLUDED.carried_forward_days - leave_entitlements.used_days,
			updated_at = NOW()
		RETURNING ` + entitlementColumnsUnaliased

	created, err := scanEntitlement(q.QueryRow(ctx, query,
		uuid.NewString(), e.BusinessID, e.EmployeeID, e.LeaveTypeID, e.Year,
		e.TotalDays, e.CarriedForwardDays, e.UsedDays,
	), false)
	if err != nil {
		return leave.Entitlement{}, fmt.Errorf("failed to upsert leave entitlement: %w", err)
	}

	return created, nil
}

const entitlementColumnsUnaliased = `
	id, business_id, employee_id, leave_type_id, year,
	total_days, carried_forward_days, used_days, remaining_days,
	created_at, updated_at
`

// Get implements leave.EntitlementRepository.
func (r *entitlementRepository) Get(ctx context.Context, employeeID, leaveTypeID string, year int, businessID string) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entitlementColumns + `
		FROM leave_entitlements le
		WHERE le.employee_id = $1 AND le.leave_type_id = $2 AND le.year = $3 AND le.business_id = $4
	`

	e, err := scanEntitlement(q.QueryRow(ctx, query, employeeID, leaveTypeID, year, businessID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Entitlement{}, leave.ErrEntitlementNotFound
		}
		return leave.Entitlement{}, fmt.Errorf("failed to get leave entitlement: %w", err)
	}

	return e, nil
}

// ListByEmployee implements leave.EntitlementRepository.
func (r *entitlementRepository) ListByEmployee(ctx context.Context, employeeID string, year int, businessID string) ([]leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entitlementColumns + `, lt.name AS leave_type_name
		FROM leave_entitlements le
		LEFT JOIN leave_types lt ON lt.id = le.leave_type_id
		WHERE le.employee_id = $1 AND le.year = $2 AND le.business_id = $3
		ORDER BY lt.name ASC
	`

	rows, err := q.Query(ctx, query, employeeID, year, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave entitlements: %w", err)
	}
	defer rows.Close()

	var entitlements []leave.Entitlement
	for rows.Next() {
		e, err := scanEntitlement(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave entitlement: %w", err)
		}
		entitlements = append(entitlements, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave entitlements: %w", err)
	}

	return entitlements, nil
}

// ApplyUsage implements leave.EntitlementRepository. The balance guard is
// part of the UPDATE's WHERE clause, so a concurrent approval can never
// drive remaining_days negative.
func (r *entitlementRepository) ApplyUsage(ctx context.Context, employeeID, leaveTypeID string, year int, days float64, businessID string) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_entitlements le
		SET used_days = le.used_days + $5,
			remaining_days = le.total_days + le.carried_forward_days - (le.used_days + $5),
			updated_at = NOW()
		WHERE le.employee_id = $1 AND le.leave_type_id = $2 AND le.year = $3 AND le.business_id = $4
		  AND le.total_days + le.carried_forward_days - (le.used_days + $5) >= 0
		RETURNING ` + entitlementColumns

	e, err := scanEntitlement(q.QueryRow(ctx, query, employeeID, leaveTypeID, year, businessID, days), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either no entitlement row or the balance would go negative.
			if _, getErr := r.Get(ctx, employeeID, leaveTypeID, year, businessID); getErr != nil {
				return leave.Entitlement{}, getErr
			}
			return leave.Entitlement{}, leave.ErrInsufficientBalance
		}
		return leave.Entitlement{}, fmt.Errorf("failed to apply leave usage: %w", err)
	}

	return e, nil
}
