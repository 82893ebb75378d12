package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

type businessRepository struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepository{db: db}
}

// GetByID implements business.BusinessRepository.
func (r *businessRepository) GetByID(ctx context.Context, id string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, owner_id, timezone, charity_rate, created_at, updated_at, deleted_at
		FROM businesses
		WHERE id = $1 AND deleted_at IS NULL
	`

	var b business.Business
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.OwnerID, &b.Timezone, &b.CharityRate,
		&b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, fmt.Errorf("failed to get business by ID: %w", err)
	}

	return b, nil
}

// GetTimezone implements business.BusinessRepository.
func (r *businessRepository) GetTimezone(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT timezone FROM businesses WHERE id = $1 AND deleted_at IS NULL`

	var timezone string
	if err := q.QueryRow(ctx, query, id).Scan(&timezone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", business.ErrBusinessNotFound
		}
		return "", fmt.Errorf("failed to get business timezone: %w", err)
	}

	return timezone, nil
}

// Update implements business.BusinessRepository.
func (r *businessRepository) Update(ctx context.Context, b business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE businesses
		SET name = $2, timezone = $3, charity_rate = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, name, owner_id, timezone, charity_rate, created_at, updated_at, deleted_at
	`

	var updated business.Business
	err := q.QueryRow(ctx, query, b.ID, b.Name, b.Timezone, b.CharityRate).Scan(
		&updated.ID, &updated.Name, &updated.OwnerID, &updated.Timezone, &updated.CharityRate,
		&updated.CreatedAt, &updated.UpdatedAt, &updated.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, fmt.Errorf("failed to update business: %w", err)
	}

	return updated, nil
}
