package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
)

func TestAttendanceRepository_DuplicateClockInConflicts(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(testDB)
	businessID := createTestBusiness(t, ctx)
	employeeID := createTestEmployee(t, ctx, businessID)

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	clockIn := date.Add(9 * time.Hour)
	record := attendance.Attendance{
		BusinessID:     businessID,
		EmployeeID:     employeeID,
		Date:           date,
		ClockIn:        &clockIn,
		Status:         attendance.StatusPresent,
		AttendanceType: attendance.TypeRegular,
	}

	first, err := repo.Create(ctx, record)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = repo.Create(ctx, record)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}
