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

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, business_id, name, description, default_days, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, business_id, name, description, default_days, is_paid, created_at, updated_at
	`

	var created leave.LeaveType
	err := q.QueryRow(ctx, query,
		uuid.NewString(), lt.BusinessID, lt.Name, lt.Description, lt.DefaultDays, lt.IsPaid,
	).Scan(
		&created.ID, &created.BusinessID, &created.Name, &created.Description,
		&created.DefaultDays, &created.IsPaid, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "uk_leave_types_business_name") {
			return leave.LeaveType{}, leave.ErrLeaveTypeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) GetByID(ctx context.Context, id string, businessID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, name, description, default_days, is_paid, created_at, updated_at
		FROM leave_types
		WHERE id = $1 AND business_id = $2
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id, businessID).Scan(
		&lt.ID, &lt.BusinessID, &lt.Name, &lt.Description,
		&lt.DefaultDays, &lt.IsPaid, &lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type by ID: %w", err)
	}

	return lt, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) List(ctx context.Context, businessID string) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, name, description, default_days, is_paid, created_at, updated_at
		FROM leave_types
		WHERE business_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(
			&lt.ID, &lt.BusinessID, &lt.Name, &lt.Description,
			&lt.DefaultDays, &lt.IsPaid, &lt.CreatedAt, &lt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave types: %w", err)
	}

	return types, nil
}
