package postgresql

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
)

var testDB *database.DB

func testInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn, 10, 2)
	require.NoError(t, err, "failed to connect to test database")
}

func createTestBusiness(t *testing.T, ctx context.Context) string {
	t.Helper()
	name := fmt.Sprintf("test-business-%d-%d", time.Now().Unix(), time.Now().Nanosecond())

	var businessID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO businesses (id, name, timezone, charity_rate, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'UTC', 0.025, NOW(), NOW())
		RETURNING id
	`, name).Scan(&businessID)
	require.NoError(t, err)
	return businessID
}

func testRule(businessID, name string) attendance.Rule {
	return attendance.Rule{
		BusinessID:               businessID,
		Name:                     name,
		LateGracePeriodMinutes:   15,
		HalfDayThresholdMinutes:  240,
		OvertimeThresholdMinutes: 480,
		OvertimeMultiplier:       decimal.NewFromFloat(1.5),
		LatePenaltyType:          attendance.LatePenaltyNone,
	}
}

func TestAttendanceRuleRepository_CreateStartsInactive(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewAttendanceRuleRepository(testDB)
	businessID := createTestBusiness(t, ctx)

	created, err := repo.Create(ctx, testRule(businessID, "standard"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsActive)
	assert.Equal(t, 15, created.LateGracePeriodMinutes)
}

func TestAttendanceRuleRepository_ActivateDeactivatesSiblings(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewAttendanceRuleRepository(testDB)
	businessID := createTestBusiness(t, ctx)

	first, err := repo.Create(ctx, testRule(businessID, "first"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, testRule(businessID, "second"))
	require.NoError(t, err)

	_, err = repo.Activate(ctx, first.ID, businessID)
	require.NoError(t, err)
	activated, err := repo.Activate(ctx, second.ID, businessID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	active, err := repo.GetActive(ctx, businessID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	refetched, err := repo.GetByID(ctx, first.ID, businessID)
	require.NoError(t, err)
	assert.False(t, refetched.IsActive)
}

func TestAttendanceRuleRepository_GetActiveNilWhenNoneActive(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewAttendanceRuleRepository(testDB)
	businessID := createTestBusiness(t, ctx)

	_, err := repo.Create(ctx, testRule(businessID, "dormant"))
	require.NoError(t, err)

	active, err := repo.GetActive(ctx, businessID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestAttendanceRuleRepository_GetByIDNotFound(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewAttendanceRuleRepository(testDB)
	businessID := createTestBusiness(t, ctx)

	_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000", businessID)
	assert.ErrorIs(t, err, attendance.ErrRuleNotFound)
}
