package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations. The
// acting user comes from the JWT claims on ctx.
type AttendanceService interface {
	// PunchIn opens today's record for the acting user.
	PunchIn(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// BreakStart pauses work accrual for the acting user.
	BreakStart(ctx context.Context) (AttendanceResponse, error)

	// BreakEnd resumes work accrual for the acting user.
	BreakEnd(ctx context.Context) (AttendanceResponse, error)

	// PunchOut closes today's record for the acting user.
	PunchOut(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// Today returns the acting user's record for today with live totals.
	Today(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for the acting user.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records across users (admin).
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Rollover force-closes every record dated before today that is still
	// open. Safe to run repeatedly; returns the number of records closed.
	Rollover(ctx context.Context) (int, error)
}
