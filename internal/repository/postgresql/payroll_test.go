package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/payroll"
)

func createTestPayroll(t *testing.T, ctx context.Context, repo payroll.PayrollRepository, businessID, employeeID string) payroll.Record {
	t.Helper()
	rec, err := repo.Create(ctx, payroll.Record{
		BusinessID:     businessID,
		EmployeeID:     employeeID,
		PayPeriodStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PayPeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:         payroll.StatusDraft,
	})
	require.NoError(t, err)
	return rec
}

func TestPayrollRepository_DeleteApprovedRecord(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewPayrollRepository(testDB)
	businessID := createTestBusiness(t, ctx)
	employeeID := createTestEmployee(t, ctx, businessID)

	rec := createTestPayroll(t, ctx, repo, businessID, employeeID)

	_, err := testDB.Exec(ctx, `UPDATE payrolls SET status = 'approved' WHERE id = $1`, rec.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID, businessID))

	_, err = repo.GetByID(ctx, rec.ID, businessID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestPayrollRepository_DeletePaidRecordRejected(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewPayrollRepository(testDB)
	businessID := createTestBusiness(t, ctx)
	employeeID := createTestEmployee(t, ctx, businessID)

	rec := createTestPayroll(t, ctx, repo, businessID, employeeID)

	_, err := testDB.Exec(ctx, `UPDATE payrolls SET status = 'paid', payment_date = NOW() WHERE id = $1`, rec.ID)
	require.NoError(t, err)

	err = repo.Delete(ctx, rec.ID, businessID)
	assert.ErrorIs(t, err, payroll.ErrRecordImmutable)

	refetched, err := repo.GetByID(ctx, rec.ID, businessID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, refetched.Status)
}

func TestPayrollRepository_DeleteMissingRecord(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewPayrollRepository(testDB)
	businessID := createTestBusiness(t, ctx)

	err := repo.Delete(ctx, "00000000-0000-0000-0000-000000000000", businessID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}
