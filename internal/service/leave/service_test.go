package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRequestDays_Inclusive(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0, requestDays(day(2025, 6, 2), day(2025, 6, 2)))
	assert.Equal(t, 3.0, requestDays(day(2025, 6, 2), day(2025, 6, 4)))
	assert.Equal(t, 7.0, requestDays(day(2025, 6, 2), day(2025, 6, 8)))
}

func TestRequestDays_AcrossMonthBoundary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4.0, requestDays(day(2025, 6, 29), day(2025, 7, 2)))
}
