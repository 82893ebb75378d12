package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

type attendanceRuleRepository struct {
	db *database.DB
}

func NewAttendanceRuleRepository(db *database.DB) attendance.RuleRepository {
	return &attendanceRuleRepository{db: db}
}

const ruleColumns = `
	id, business_id, name, late_grace_period_minutes, half_day_threshold_minutes,
	overtime_threshold_minutes, overtime_multiplier, weekend_overtime,
	holiday_overtime, late_penalty_type, is_active, created_at, updated_at
`

func scanRule(row pgx.Row) (attendance.Rule, error) {
	var rule attendance.Rule
	err := row.Scan(
		&rule.ID, &rule.BusinessID, &rule.Name, &rule.LateGracePeriodMinutes, &rule.HalfDayThresholdMinutes,
		&rule.OvertimeThresholdMinutes, &rule.OvertimeMultiplier, &rule.WeekendOvertime,
		&rule.HolidayOvertime, &rule.LatePenaltyType, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	return rule, err
}

// Create implements attendance.RuleRepository. New rules start inactive.
func (r *attendanceRuleRepository) Create(ctx context.Context, rule attendance.Rule) (attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_rules (
			id, business_id, name, late_grace_period_minutes, half_day_threshold_minutes,
			overtime_threshold_minutes, overtime_multiplier, weekend_overtime,
			holiday_overtime, late_penalty_type, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false)
		RETURNING ` + ruleColumns

	created, err := scanRule(q.QueryRow(ctx, query,
		uuid.NewString(), rule.BusinessID, rule.Name, rule.LateGracePeriodMinutes, rule.HalfDayThresholdMinutes,
		rule.OvertimeThresholdMinutes, rule.OvertimeMultiplier, rule.WeekendOvertime,
		rule.HolidayOvertime, rule.LatePenaltyType,
	))
	if err != nil {
		return attendance.Rule{}, fmt.Errorf("failed to create attendance rule: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.RuleRepository.
func (r *attendanceRuleRepository) GetByID(ctx context.Context, id string, businessID string) (attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `
		FROM attendance_rules
		WHERE id = $1 AND business_id = $2
	`

	rule, err := scanRule(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Rule{}, attendance.ErrRuleNotFound
		}
		return attendance.Rule{}, fmt.Errorf("failed to get attendance rule by ID: %w", err)
	}

	return rule, nil
}

// GetActive implements attendance.RuleRepository.
func (r *attendanceRuleRepository) GetActive(ctx context.Context, businessID string) (*attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `
		FROM attendance_rules
		WHERE business_id = $1 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`

	rule, err := scanRule(q.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No active rule; callers fall back to hardcoded thresholds
		}
		return nil, fmt.Errorf("failed to get active attendance rule: %w", err)
	}

	return &rule, nil
}

// List implements attendance.RuleRepository.
func (r *attendanceRuleRepository) List(ctx context.Context, businessID string) ([]attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `
		FROM attendance_rules
		WHERE business_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance rules: %w", err)
	}
	defer rows.Close()

	var rules []attendance.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rules: %w", err)
	}

	return rules, nil
}

// Activate implements attendance.RuleRepository. Deactivating siblings and
// activating the target happens in one statement, so two concurrent
// activations cannot leave two active rules. A partial unique index on
// (business_id) WHERE is_active backs this up.
func (r *attendanceRuleRepository) Activate(ctx context.Context, id string, businessID string) (attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH deactivated AS (
			UPDATE attendance_rules
			SET is_active = false, updated_at = NOW()
			WHERE business_id = $2 AND is_active = true AND id <> $1
		)
		UPDATE attendance_rules
		SET is_active = true, updated_at = NOW()
		WHERE id = $1 AND business_id = $2
		RETURNING ` + ruleColumns

	rule, err := scanRule(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Rule{}, attendance.ErrRuleNotFound
		}
		return attendance.Rule{}, fmt.Errorf("failed to activate attendance rule: %w", err)
	}

	return rule, nil
}
