package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 12, hour, min, 0, 0, time.UTC)
}

func day() time.Time {
	return time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
}

func TestElapsedMinutes(t *testing.T) {
	mins, err := ElapsedMinutes(at(9, 0), at(13, 0))
	require.NoError(t, err)
	assert.Equal(t, 240, mins)

	// Partial minutes round down
	mins, err = ElapsedMinutes(at(9, 0), at(9, 1).Add(59*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, mins)

	// Zero-length interval
	mins, err = ElapsedMinutes(at(9, 0), at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, mins)

	// Inverted interval fails rather than going negative
	_, err = ElapsedMinutes(at(13, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestFullDayScenario(t *testing.T) {
	rec := NewDay("user-1", day(), at(9, 0), nil)
	assert.Equal(t, StatusPunchedIn, rec.Status)
	assert.Equal(t, 0, rec.TotalWorkedMinutes)

	rec, err := rec.StartBreak(at(13, 0))
	require.NoError(t, err)
	assert.Equal(t, StatusOnBreak, rec.Status)
	assert.Equal(t, 240, rec.TotalWorkedMinutes)

	rec, err = rec.EndBreak(at(13, 30))
	require.NoError(t, err)
	assert.Equal(t, StatusPunchedIn, rec.Status)
	assert.Equal(t, 30, rec.TotalBreakMinutes)
	assert.Nil(t, rec.BreakStart)

	rec, err = rec.Close(at(18, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, StatusPunchedOut, rec.Status)
	assert.Equal(t, 510, rec.TotalWorkedMinutes)
	assert.Equal(t, 30, rec.TotalBreakMinutes)
	require.NotNil(t, rec.PunchOut)
	assert.Equal(t, at(18, 0), *rec.PunchOut)
}

func TestPunchOutWhileOnBreakClosesBreakFirst(t *testing.T) {
	rec := NewDay("user-1", day(), at(9, 0), nil)

	rec, err := rec.StartBreak(at(12, 0))
	require.NoError(t, err)

	rec, err = rec.Close(at(12, 45), nil)
	require.NoError(t, err)

	assert.Equal(t, StatusPunchedOut, rec.Status)
	assert.Equal(t, 45, rec.TotalBreakMinutes)
	// Work stopped at break start; punch-out adds only the post-break
	// segment, which is zero-length here.
	assert.Equal(t, 180, rec.TotalWorkedMinutes)
}

func TestMultipleBreakSegmentsAccumulate(t *testing.T) {
	rec := NewDay("user-1", day(), at(9, 0), nil)

	rec, err := rec.StartBreak(at(10, 0))
	require.NoError(t, err)
	rec, err = rec.EndBreak(at(10, 15))
	require.NoError(t, err)

	rec, err = rec.StartBreak(at(12, 0))
	require.NoError(t, err)
	rec, err = rec.EndBreak(at(12, 45))
	require.NoError(t, err)

	rec, err = rec.Close(at(17, 0), nil)
	require.NoError(t, err)

	assert.Equal(t, 60, rec.TotalBreakMinutes)
	// 09:00-10:00 + 10:15-12:00 + 12:45-17:00
	assert.Equal(t, 60+105+255, rec.TotalWorkedMinutes)
}

func TestInvalidTransitions(t *testing.T) {
	rec := NewDay("user-1", day(), at(9, 0), nil)

	// Not on break yet
	_, err := rec.EndBreak(at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	rec, err = rec.Close(at(17, 0), nil)
	require.NoError(t, err)

	// Terminal state rejects everything
	_, err = rec.StartBreak(at(17, 30))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = rec.EndBreak(at(17, 30))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = rec.Close(at(17, 30), nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDoubleBreakStartFails(t *testing.T) {
	rec := NewDay("user-1", day(), at(9, 0), nil)

	rec, err := rec.StartBreak(at(12, 0))
	require.NoError(t, err)

	before := rec
	_, err = rec.StartBreak(at(12, 1))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, before, rec)
}

func TestForceClose(t *testing.T) {
	endOfDay := time.Date(2024, 3, 12, 23, 59, 59, 0, time.UTC)

	rec := NewDay("user-1", day(), at(9, 0), nil)
	rec, err := rec.StartBreak(at(13, 0))
	require.NoError(t, err)

	closed := rec.ForceClose(endOfDay)
	assert.Equal(t, StatusPunchedOut, closed.Status)
	require.NotNil(t, closed.PunchOut)
	assert.Equal(t, endOfDay, *closed.PunchOut)
	assert.Nil(t, closed.BreakStart)
	// Forced closure accrues nothing beyond what live transitions stored.
	assert.Equal(t, 240, closed.TotalWorkedMinutes)
	assert.Equal(t, 0, closed.TotalBreakMinutes)

	// Already-terminal records pass through untouched.
	again := closed.ForceClose(endOfDay.Add(24 * time.Hour))
	assert.Equal(t, closed, again)
}

func TestLiveMinutes(t *testing.T) {
	rec := NewDay("user-1", day(), at(9, 0), nil)

	worked, err := LiveWorkedMinutes(rec, at(11, 0))
	require.NoError(t, err)
	assert.Equal(t, 120, worked)

	rested, err := LiveBreakMinutes(rec, at(11, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, rested)

	rec, err = rec.StartBreak(at(13, 0))
	require.NoError(t, err)

	// Work is frozen during the break; the break ticks instead.
	worked, err = LiveWorkedMinutes(rec, at(13, 20))
	require.NoError(t, err)
	assert.Equal(t, 240, worked)

	rested, err = LiveBreakMinutes(rec, at(13, 20))
	require.NoError(t, err)
	assert.Equal(t, 20, rested)

	rec, err = rec.EndBreak(at(13, 30))
	require.NoError(t, err)

	worked, err = LiveWorkedMinutes(rec, at(14, 30))
	require.NoError(t, err)
	assert.Equal(t, 300, worked)

	rec, err = rec.Close(at(18, 0), nil)
	require.NoError(t, err)

	// Terminal records report stored totals regardless of now.
	worked, err = LiveWorkedMinutes(rec, at(23, 0))
	require.NoError(t, err)
	assert.Equal(t, 510, worked)
}

func TestPunchGeoIsAdvisory(t *testing.T) {
	geo := &Geo{Latitude: -6.2, Longitude: 106.8}
	rec := NewDay("user-1", day(), at(9, 0), geo)
	require.NotNil(t, rec.PunchInLatitude)
	assert.InDelta(t, -6.2, *rec.PunchInLatitude, 0.0001)

	rec, err := rec.Close(at(17, 0), &Geo{Latitude: -6.3, Longitude: 106.9})
	require.NoError(t, err)
	require.NotNil(t, rec.PunchOutLongitude)
	assert.InDelta(t, 106.9, *rec.PunchOutLongitude, 0.0001)
}
