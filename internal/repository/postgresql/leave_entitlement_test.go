package postgresql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/leave"
)

func createTestEmployee(t *testing.T, ctx context.Context, businessID string) string {
	t.Helper()
	name := fmt.Sprintf("Test Employee %d", time.Now().Nanosecond())

	var employeeID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO employees (id, business_id, full_name, hire_date, salary_type, base_salary, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, '2024-01-01', 'monthly', 3000, 'active', NOW(), NOW())
		RETURNING id
	`, businessID, name).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func createTestLeaveType(t *testing.T, ctx context.Context, businessID string) string {
	t.Helper()
	name := fmt.Sprintf("annual-%d", time.Now().Nanosecond())

	var leaveTypeID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO leave_types (id, business_id, name, default_days, is_paid, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, 12, true, NOW(), NOW())
		RETURNING id
	`, businessID, name).Scan(&leaveTypeID)
	require.NoError(t, err)
	return leaveTypeID
}

func TestEntitlementRepository_UpsertKeepsUsedDays(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewEntitlementRepository(testDB)
	businessID := createTestBusiness(t, ctx)
	employeeID := createTestEmployee(t, ctx, businessID)
	leaveTypeID := createTestLeaveType(t, ctx, businessID)

	created, err := repo.Upsert(ctx, leave.Entitlement{
		BusinessID:  businessID,
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        2025,
		TotalDays:   12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, created.RemainingDays)

	_, err = repo.ApplyUsage(ctx, employeeID, leaveTypeID, 2025, 3, businessID)
	require.NoError(t, err)

	// Re-seeding the allotment must not reset the used days
	updated, err := repo.Upsert(ctx, leave.Entitlement{
		BusinessID:         businessID,
		EmployeeID:         employeeID,
		LeaveTypeID:        leaveTypeID,
		Year:               2025,
		TotalDays:          14,
		CarriedForwardDays: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 3.0, updated.UsedDays)
	assert.Equal(t, 13.0, updated.RemainingDays)
	assert.Equal(t, updated.TotalDays+updated.CarriedForwardDays-updated.UsedDays, updated.RemainingDays)
}

func TestEntitlementRepository_ApplyUsageGuardsBalance(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewEntitlementRepository(testDB)
	businessID := createTestBusiness(t, ctx)
	employeeID := createTestEmployee(t, ctx, businessID)
	leaveTypeID := createTestLeaveType(t, ctx, businessID)

	_, err := repo.Upsert(ctx, leave.Entitlement{
		BusinessID:  businessID,
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        2025,
		TotalDays:   5,
	})
	require.NoError(t, err)

	_, err = repo.ApplyUsage(ctx, employeeID, leaveTypeID, 2025, 6, businessID)
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	debited, err := repo.ApplyUsage(ctx, employeeID, leaveTypeID, 2025, 5, businessID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, debited.RemainingDays)
}

func TestEntitlementRepository_ApplyUsageMissingEntitlement(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewEntitlementRepository(testDB)
	businessID := createTestBusiness(t, ctx)
	employeeID := createTestEmployee(t, ctx, businessID)
	leaveTypeID := createTestLeaveType(t, ctx, businessID)

	_, err := repo.ApplyUsage(ctx, employeeID, leaveTypeID, 2025, 1, businessID)
	assert.ErrorIs(t, err, leave.ErrEntitlementNotFound)
}
