package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrCheckOutBeforeIn  = errors.New("check-out must not be before check-in")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
