package attendance

import "time"

// ElapsedMinutes returns the whole minutes between start and end, rounded
// down. end before start is an ErrInvalidInterval, never a negative count.
func ElapsedMinutes(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidInterval
	}
	return int(end.Sub(start) / time.Minute), nil
}

// LiveWorkedMinutes returns the worked total as of now: the stored
// closed-segment total plus the running work segment while punched in. Work
// does not accrue while on break or after punch-out.
func LiveWorkedMinutes(a Attendance, now time.Time) (int, error) {
	if a.Status != StatusPunchedIn || a.PunchIn == nil {
		return a.TotalWorkedMinutes, nil
	}
	open, err := ElapsedMinutes(a.openWorkStart(), now)
	if err != nil {
		return 0, err
	}
	return a.TotalWorkedMinutes + open, nil
}

// LiveBreakMinutes returns the break total as of now, counting the running
// break segment while one is open.
func LiveBreakMinutes(a Attendance, now time.Time) (int, error) {
	if a.Status != StatusOnBreak || a.BreakStart == nil {
		return a.TotalBreakMinutes, nil
	}
	open, err := ElapsedMinutes(*a.BreakStart, now)
	if err != nil {
		return 0, err
	}
	return a.TotalBreakMinutes + open, nil
}
