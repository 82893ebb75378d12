package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("work schedule not found")
	ErrScheduleOverlap  = errors.New("an overlapping work schedule already exists for this employee")
)
