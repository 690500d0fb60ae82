package attendance

import "time"

// Transitions are pure: each takes the current record plus a timestamp and
// returns the next record, leaving persistence to the caller. Minute totals
// are accrued when a segment closes, so a record can carry any number of
// break segments per day.

// NewDay creates the day's record for a first punch-in.
func NewDay(userID string, date time.Time, now time.Time, geo *Geo) Attendance {
	a := Attendance{
		UserID:  userID,
		Date:    date,
		PunchIn: &now,
		Status:  StatusPunchedIn,
	}
	if geo != nil {
		a.PunchInLatitude = &geo.Latitude
		a.PunchInLongitude = &geo.Longitude
	}
	return a
}

// StartBreak closes the running work segment and opens a break.
func (a Attendance) StartBreak(now time.Time) (Attendance, error) {
	if a.Status != StatusPunchedIn {
		return Attendance{}, ErrInvalidTransition
	}
	worked, err := ElapsedMinutes(a.openWorkStart(), now)
	if err != nil {
		return Attendance{}, err
	}
	a.TotalWorkedMinutes += worked
	a.BreakStart = &now
	a.BreakEnd = nil
	a.Status = StatusOnBreak
	return a, nil
}

// EndBreak closes the open break segment; the break end becomes the start of
// the next work segment.
func (a Attendance) EndBreak(now time.Time) (Attendance, error) {
	if a.Status != StatusOnBreak || a.BreakStart == nil {
		return Attendance{}, ErrInvalidTransition
	}
	rested, err := ElapsedMinutes(*a.BreakStart, now)
	if err != nil {
		return Attendance{}, err
	}
	a.TotalBreakMinutes += rested
	a.BreakStart = nil
	a.BreakEnd = &now
	a.Status = StatusPunchedIn
	return a, nil
}

// Close punches the record out, first closing an open break if there is one.
// The record is terminal afterwards.
func (a Attendance) Close(now time.Time, geo *Geo) (Attendance, error) {
	if a.Status == StatusOnBreak {
		var err error
		a, err = a.EndBreak(now)
		if err != nil {
			return Attendance{}, err
		}
	}
	if a.Status != StatusPunchedIn {
		return Attendance{}, ErrInvalidTransition
	}
	worked, err := ElapsedMinutes(a.openWorkStart(), now)
	if err != nil {
		return Attendance{}, err
	}
	a.TotalWorkedMinutes += worked
	a.PunchOut = &now
	a.Status = StatusPunchedOut
	if geo != nil {
		a.PunchOutLatitude = &geo.Latitude
		a.PunchOutLongitude = &geo.Longitude
	}
	return a, nil
}

// ForceClose terminates an abandoned record at endOfDay without accruing a
// final work or break segment; no legitimate end-of-session event occurred,
// so the totals stay at whatever the live transitions accumulated.
func (a Attendance) ForceClose(endOfDay time.Time) Attendance {
	if a.Status == StatusPunchedOut {
		return a
	}
	a.BreakStart = nil
	a.PunchOut = &endOfDay
	a.Status = StatusPunchedOut
	return a
}
