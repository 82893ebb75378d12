package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/schedule"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// Create implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (
			id, business_id, employee_id, effective_from, effective_to,
			break_duration_minutes, weekly_hours_target
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), ws.BusinessID, ws.EmployeeID, ws.EffectiveFrom, ws.EffectiveTo,
		ws.BreakDurationMinutes, ws.WeeklyHoursTarget,
	).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	dayQuery := `
		INSERT INTO work_schedule_days (id, work_schedule_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range ws.Days {
		ws.Days[i].WorkScheduleID = ws.ID
		err := q.QueryRow(ctx, dayQuery,
			uuid.NewString(), ws.ID, ws.Days[i].DayOfWeek, ws.Days[i].StartTime, ws.Days[i].EndTime,
		).Scan(&ws.Days[i].ID)
		if err != nil {
			return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule day: %w", err)
		}
	}

	return ws, nil
}

func (r *workScheduleRepository) loadDays(ctx context.Context, q database.Querier, ws *schedule.WorkSchedule) error {
	query := `
		SELECT id, work_schedule_id, day_of_week, start_time, end_time
		FROM work_schedule_days
		WHERE work_schedule_id = $1
		ORDER BY day_of_week ASC
	`

	rows, err := q.Query(ctx, query, ws.ID)
	if err != nil {
		return fmt.Errorf("failed to load work schedule days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day schedule.WorkScheduleDay
		if err := rows.Scan(&day.ID, &day.WorkScheduleID, &day.DayOfWeek, &day.StartTime, &day.EndTime); err != nil {
			return fmt.Errorf("failed to scan work schedule day: %w", err)
		}
		ws.Days = append(ws.Days, day)
	}
	return rows.Err()
}

// GetActiveForDate implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetActiveForDate(ctx context.Context, employeeID string, date time.Time, businessID string) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, employee_id, effective_from, effective_to,
			   break_duration_minutes, weekly_hours_target, created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1
		  AND business_id = $2
		  AND effective_from <= $3
		  AND (effective_to IS NULL OR effective_to >= $3)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, employeeID, businessID, date).Scan(
		&ws.ID, &ws.BusinessID, &ws.EmployeeID, &ws.EffectiveFrom, &ws.EffectiveTo,
		&ws.BreakDurationMinutes, &ws.WeeklyHoursTarget, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No active schedule; callers use default shift bounds
		}
		return nil, fmt.Errorf("failed to get active work schedule: %w", err)
	}

	if err := r.loadDays(ctx, q, &ws); err != nil {
		return nil, err
	}

	return &ws, nil
}

// ListByEmployee implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) ListByEmployee(ctx context.Context, employeeID string, businessID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, employee_id, effective_from, effective_to,
			   break_duration_minutes, weekly_hours_target, created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1 AND business_id = $2
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, employeeID, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(
			&ws.ID, &ws.BusinessID, &ws.EmployeeID, &ws.EffectiveFrom, &ws.EffectiveTo,
			&ws.BreakDurationMinutes, &ws.WeeklyHoursTarget, &ws.CreatedAt, &ws.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work schedules: %w", err)
	}

	for i := range schedules {
		if err := r.loadDays(ctx, q, &schedules[i]); err != nil {
			return nil, err
		}
	}

	return schedules, nil
}

// HasOverlap implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) HasOverlap(ctx context.Context, employeeID string, effectiveFrom time.Time, effectiveTo *time.Time, businessID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// An open-ended range overlaps everything from its start onward.
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM work_schedules
			WHERE employee_id = $1
			  AND business_id = $2
			  AND effective_from <= COALESCE($4, 'infinity'::date)
			  AND COALESCE(effective_to, 'infinity'::date) >= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, businessID, effectiveFrom, effectiveTo).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check work schedule overlap: %w", err)
	}

	return exists, nil
}
