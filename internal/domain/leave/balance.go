package leave

import "time"

// DaysRequested converts a date range into the number of leave days it
// consumes. Half-day requests are always 0.5 and must span a single day;
// full-day requests count calendar days inclusively.
func DaysRequested(from, to time.Time, dayType DayType) (float64, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)

	if to.Before(from) {
		return 0, ErrInvalidLeaveRange
	}

	switch dayType {
	case DayTypeHalf:
		if !from.Equal(to) {
			return 0, ErrInvalidLeaveRange
		}
		return 0.5, nil
	case DayTypeFull:
		days := int(to.Sub(from).Hours()/24) + 1
		return float64(days), nil
	default:
		return 0, ErrInvalidLeaveRange
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
