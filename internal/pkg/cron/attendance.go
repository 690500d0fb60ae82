package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/attendance"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/clock"
)

// AttendanceJobs owns the background jobs around attendance records.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	clock             clock.Clock
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		clock:             clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("rollover_open_attendances", 1*time.Hour, j.RolloverOpenAttendances)
}

// RolloverOpenAttendances force-closes every attendance record from a past
// day that was never punched out. The job ticks hourly but acts only in the
// 00:00-00:59 window; a missed window is healed on the next run because the
// sweep targets any record dated before today, not just yesterday.
func (j *AttendanceJobs) RolloverOpenAttendances(ctx context.Context) error {
	if j.clock.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting attendance rollover job")

	closed, err := j.attendanceService.Rollover(ctx)
	if err != nil {
		return err
	}

	if closed == 0 {
		slog.Info("Cron: No open attendances to roll over")
		return nil
	}

	slog.Info("Cron: Rolled over open attendances", "count", closed)
	return nil
}
