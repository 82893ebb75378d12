package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.business_id, a.employee_id, a.date, a.clock_in, a.clock_out,
	a.break_start, a.break_end, a.total_hours, a.overtime_hours,
	a.late_minutes, a.early_departure_minutes, a.status, a.attendance_type,
	a.entry_method, a.notes, a.location_latitude, a.location_longitude,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row, withEmployeeName bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.BusinessID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.BreakStart, &att.BreakEnd, &att.TotalHours, &att.OvertimeHours,
		&att.LateMinutes, &att.EarlyDepartureMinutes, &att.Status, &att.AttendanceType,
		&att.EntryMethod, &att.Notes, &att.LocationLatitude, &att.LocationLongitude,
		&att.CreatedAt, &att.UpdatedAt,
	}
	if withEmployeeName {
		dest = append(dest, &att.EmployeeName)
	}
	err := row.Scan(dest...)
	return att, err
}

// Create implements attendance.AttendanceRepository.
// The unique index on (employee_id, date) turns a concurrent double
// clock-in into ErrAlreadyClockedIn instead of a second row.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, business_id, employee_id, date, clock_in, clock_out,
			break_start, break_end, total_hours, overtime_hours,
			late_minutes, early_departure_minutes, status, attendance_type,
			entry_method, notes, location_latitude, location_longitude
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		att.BusinessID,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		att.ClockOut,
		att.BreakStart,
		att.BreakEnd,
		att.TotalHours,
		att.OvertimeHours,
		att.LateMinutes,
		att.EarlyDepartureMinutes,
		att.Status,
		att.AttendanceType,
		att.EntryMethod,
		att.Notes,
		att.LocationLatitude,
		att.LocationLongitude,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string, businessID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1 AND a.business_id = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id, businessID), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetOpenByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, businessID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		  AND a.business_id = $3
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, businessID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $3, break_start = $4, break_end = $5,
			total_hours = $6, overtime_hours = $7,
			late_minutes = $8, early_departure_minutes = $9,
			status = $10, notes = $11, updated_at = NOW()
		WHERE id = $1 AND business_id = $2
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.BusinessID, att.ClockOut, att.BreakStart, att.BreakEnd,
		att.TotalHours, att.OvertimeHours,
		att.LateMinutes, att.EarlyDepartureMinutes,
		att.Status, att.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter, businessID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.business_id = $1"
	args := []interface{}{businessID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// SortBy/SortOrder are whitelisted by Filter.Validate.
	orderBy := "a." + filter.SortBy + " " + filter.SortOrder

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, orderBy, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, total, nil
}

// ListForPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, businessID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.business_id = $2
		  AND a.date >= $3
		  AND a.date <= $4
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, businessID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for period: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}
