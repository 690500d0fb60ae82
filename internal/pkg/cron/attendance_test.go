package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/attendance"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/clock"
)

type stubAttendanceService struct {
	attendance.AttendanceService
	rolloverCalls int
}

func (s *stubAttendanceService) Rollover(ctx context.Context) (int, error) {
	s.rolloverCalls++
	return 3, nil
}

func TestRolloverRunsOnlyInMidnightWindow(t *testing.T) {
	t.Parallel()

	svc := &stubAttendanceService{}
	clk := clock.NewFixed(time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC))
	jobs := NewAttendanceJobs(svc, clk)

	require.NoError(t, jobs.RolloverOpenAttendances(context.Background()))
	assert.Equal(t, 0, svc.rolloverCalls)

	clk.Time = time.Date(2024, 3, 13, 0, 30, 0, 0, time.UTC)
	require.NoError(t, jobs.RolloverOpenAttendances(context.Background()))
	assert.Equal(t, 1, svc.rolloverCalls)
}

func TestRunOnceInvokesRegisteredJobs(t *testing.T) {
	t.Parallel()

	svc := &stubAttendanceService{}
	clk := clock.NewFixed(time.Date(2024, 3, 13, 0, 5, 0, 0, time.UTC))
	jobs := NewAttendanceJobs(svc, clk)

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)
	scheduler.RunOnce(context.Background())

	assert.Equal(t, 1, svc.rolloverCalls)
}
