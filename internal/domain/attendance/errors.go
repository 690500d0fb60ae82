package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyPunchedIn   = errors.New("you have already punched in today")
	ErrInvalidTransition  = errors.New("action is not allowed from the current attendance status")
	ErrInvalidInterval    = errors.New("interval ends before it starts")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
