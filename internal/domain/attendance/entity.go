package attendance

import (
	"time"
)

// Status is the stored lifecycle state of a day's attendance record. The
// absence of a record for (user, date) is the implicit "not started" state.
type Status string

const (
	StatusPunchedIn  Status = "punched_in"
	StatusOnBreak    Status = "on_break"
	StatusPunchedOut Status = "punched_out"
)

// Geo is an advisory location attached to a punch. It never gates a
// transition.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// Attendance is the single mutable row per (user, calendar date). Minute
// totals hold closed segments only; open segments are derived live from the
// punch/break timestamps.
type Attendance struct {
	ID     string
	UserID string
	Date   time.Time

	PunchIn    *time.Time
	PunchOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time

	TotalWorkedMinutes int
	TotalBreakMinutes  int

	Status Status

	PunchInLatitude   *float64
	PunchInLongitude  *float64
	PunchOutLatitude  *float64
	PunchOutLongitude *float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName *string
}

// openWorkStart is the start of the running work segment: the last break end
// if one exists, otherwise the punch-in. Only meaningful while punched in.
func (a Attendance) openWorkStart() time.Time {
	if a.BreakEnd != nil {
		return *a.BreakEnd
	}
	return *a.PunchIn
}
