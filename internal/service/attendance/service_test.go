package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/attendance"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/clock"
)

// fakeAttendanceRepo is an in-memory AttendanceRepository with the same
// guard semantics as the SQL implementation.
type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.UserID == att.UserID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
		}
	}
	att.ID = uuid.NewString()
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Date.Equal(date) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance, expected attendance.Status) error {
	current, ok := f.records[att.ID]
	if !ok || current.Status != expected {
		return attendance.ErrInvalidTransition
	}
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	var open []attendance.Attendance
	for _, rec := range f.records {
		if rec.Date.Before(day) && rec.Status != attendance.StatusPunchedOut {
			open = append(open, rec)
		}
	}
	return open, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "worker@example.com",
		"role":    "employee",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(start time.Time) (attendance.AttendanceService, *fakeAttendanceRepo, *clock.Fixed) {
	repo := newFakeAttendanceRepo()
	clk := clock.NewFixed(start)
	svc := NewAttendanceService(nil, repo, clk)
	return svc, repo, clk
}

var nineAM = time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)

func TestPunchInCreatesTodaysRecord(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	resp, err := svc.PunchIn(ctx, attendance.PunchRequest{})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPunchedIn, resp.Status)
	assert.Equal(t, "2024-03-12", resp.Date)
	require.NotNil(t, resp.PunchInTime)
	assert.Equal(t, 0, resp.TotalWorkedMinutes)
}

func TestPunchInTwiceSameDayFails(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	_, err = svc.PunchIn(ctx, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunchInNextDayAfterUnclosedRecordSucceeds(t *testing.T) {
	t.Parallel()
	svc, _, clk := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	// Yesterday's record is still open but scoped to its own date.
	clk.Advance(24 * time.Hour)

	resp, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-13", resp.Date)
}

func TestFullDayFlowThroughService(t *testing.T) {
	t.Parallel()
	svc, _, clk := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	clk.Advance(4 * time.Hour)
	resp, err := svc.BreakStart(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnBreak, resp.Status)
	assert.Equal(t, 240, resp.TotalWorkedMinutes)

	clk.Advance(30 * time.Minute)
	resp, err = svc.BreakEnd(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPunchedIn, resp.Status)
	assert.Equal(t, 30, resp.TotalBreakMinutes)

	clk.Advance(4*time.Hour + 30*time.Minute)
	resp, err = svc.PunchOut(ctx, attendance.PunchRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPunchedOut, resp.Status)
	assert.Equal(t, 510, resp.TotalWorkedMinutes)
	assert.Equal(t, 30, resp.TotalBreakMinutes)
	require.NotNil(t, resp.PunchOutTime)
}

func TestBreakStartWithoutPunchInFails(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.BreakStart(ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestPunchOutAfterPunchOutFails(t *testing.T) {
	t.Parallel()
	svc, _, clk := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	clk.Advance(8 * time.Hour)
	_, err = svc.PunchOut(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	_, err = svc.PunchOut(ctx, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestTodayReportsLiveMinutes(t *testing.T) {
	t.Parallel()
	svc, _, clk := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	clk.Advance(90 * time.Minute)
	resp, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalWorkedMinutes)
	assert.Equal(t, 90, resp.LiveWorkedMinutes)
	assert.Equal(t, 0, resp.LiveBreakMinutes)
}

func TestTodayWithoutRecordReturnsNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.Today(ctx)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestPunchInRejectsPartialLocation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	lat := 52.37
	_, err := svc.PunchIn(ctx, attendance.PunchRequest{Latitude: &lat})
	assert.Error(t, err)
}

func TestPunchInRecordsLocation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	lat, lng := 52.37, 4.89
	resp, err := svc.PunchIn(ctx, attendance.PunchRequest{Latitude: &lat, Longitude: &lng})

	require.NoError(t, err)
	require.NotNil(t, resp.PunchInLatitude)
	assert.Equal(t, lat, *resp.PunchInLatitude)
	require.NotNil(t, resp.PunchInLongitude)
	assert.Equal(t, lng, *resp.PunchInLongitude)
}

func TestMissingClaimsRejected(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(nineAM)

	_, err := svc.PunchIn(context.Background(), attendance.PunchRequest{})
	assert.Error(t, err)
}

func TestRolloverClosesStaleRecords(t *testing.T) {
	t.Parallel()
	svc, repo, clk := newTestService(nineAM)

	ctxA := authedContext(t, "user-a")
	ctxB := authedContext(t, "user-b")
	ctxC := authedContext(t, "user-c")

	// user-a leaves a record punched in, user-b leaves one on break,
	// user-c punches out properly.
	_, err := svc.PunchIn(ctxA, attendance.PunchRequest{})
	require.NoError(t, err)

	_, err = svc.PunchIn(ctxB, attendance.PunchRequest{})
	require.NoError(t, err)
	clk.Advance(2 * time.Hour)
	_, err = svc.BreakStart(ctxB)
	require.NoError(t, err)

	_, err = svc.PunchIn(ctxC, attendance.PunchRequest{})
	require.NoError(t, err)
	clk.Advance(6 * time.Hour)
	_, err = svc.PunchOut(ctxC, attendance.PunchRequest{})
	require.NoError(t, err)

	// Midnight passes.
	clk.Advance(16 * time.Hour)

	closed, err := svc.Rollover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, closed)

	for _, rec := range repo.records {
		assert.Equal(t, attendance.StatusPunchedOut, rec.Status)
		assert.Nil(t, rec.BreakStart)
		require.NotNil(t, rec.PunchOut)
	}
}

func TestRolloverIsIdempotent(t *testing.T) {
	t.Parallel()
	svc, _, clk := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	_, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	clk.Advance(24 * time.Hour)

	closed, err := svc.Rollover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	closed, err = svc.Rollover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestRolloverForceCloseSetsEndOfDay(t *testing.T) {
	t.Parallel()
	svc, repo, clk := newTestService(nineAM)
	ctx := authedContext(t, "user-1")

	resp, err := svc.PunchIn(ctx, attendance.PunchRequest{})
	require.NoError(t, err)

	clk.Advance(24 * time.Hour)

	_, err = svc.Rollover(context.Background())
	require.NoError(t, err)

	rec, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, rec.PunchOut)
	assert.Equal(t, time.Date(2024, 3, 12, 23, 59, 59, 0, time.UTC), *rec.PunchOut)
	// Force-close never fabricates worked minutes.
	assert.Equal(t, 0, rec.TotalWorkedMinutes)
}
