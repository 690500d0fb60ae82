package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts the day's record. A unique (user_id, date) index backs
	// the one-record-per-day invariant; a duplicate insert returns
	// ErrAlreadyPunchedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a calendar date.
	// Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// Update writes the record guarded by the status the caller read. When a
	// concurrent writer already moved the row past expected, zero rows match
	// and ErrInvalidTransition is returned.
	Update(ctx context.Context, att Attendance, expected Status) error

	// ListOpenBefore returns records dated strictly before day whose status
	// is not punched_out. Used by the daily rollover sweep.
	ListOpenBefore(ctx context.Context, day time.Time) ([]Attendance, error)

	// ListByUser retrieves a user's records with filters and pagination.
	ListByUser(ctx context.Context, userID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// List retrieves records across users with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
