package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in/out errors
	ErrAlreadyClockedIn  = errors.New("attendance already recorded for this date")
	ErrNotClockedIn      = errors.New("no open attendance record for today")
	ErrAlreadyClockedOut = errors.New("attendance already has a clock-out time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrRuleNotFound       = errors.New("attendance rule not found")
)
