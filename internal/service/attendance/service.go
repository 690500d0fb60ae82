package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/attendance"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/clock"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	clock clock.Clock
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		clock:                clk,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// dateOf truncates a timestamp to its UTC calendar day.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := dateOf(now)

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
	}

	rec := attendance.NewDay(userID, today, now, req.Geo())

	// The unique (user_id, date) index resolves a concurrent double
	// punch-in: the loser of the race gets ErrAlreadyPunchedIn here.
	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.mapToResponse(created), nil
}

// BreakStart implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BreakStart(ctx context.Context) (attendance.AttendanceResponse, error) {
	return a.transitionToday(ctx, func(rec attendance.Attendance, now time.Time) (attendance.Attendance, error) {
		return rec.StartBreak(now)
	})
}

// BreakEnd implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BreakEnd(ctx context.Context) (attendance.AttendanceResponse, error) {
	return a.transitionToday(ctx, func(rec attendance.Attendance, now time.Time) (attendance.Attendance, error) {
		return rec.EndBreak(now)
	})
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.transitionToday(ctx, func(rec attendance.Attendance, now time.Time) (attendance.Attendance, error) {
		return rec.Close(now, req.Geo())
	})
}

// transitionToday loads today's record, applies a pure transition and saves
// the result guarded on the status that was read. A concurrent writer that
// already moved the row makes the guarded update miss, which surfaces as
// ErrInvalidTransition instead of double-counted minutes.
func (a *AttendanceServiceImpl) transitionToday(
	ctx context.Context,
	fn func(rec attendance.Attendance, now time.Time) (attendance.Attendance, error),
) (attendance.AttendanceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()

	rec, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, dateOf(now))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
	}

	expected := rec.Status
	next, err := fn(*rec, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.AttendanceRepository.Update(ctx, next, expected); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.mapToResponse(next), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, dateOf(a.clock.Now()))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return a.mapToResponse(*rec), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	return a.mapToList(records, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return a.mapToList(records, total, filter.Page, filter.Limit), nil
}

// Rollover implements attendance.AttendanceService. It force-closes every
// record dated before today that never punched out. Each record fails or
// succeeds on its own; one bad row never aborts the sweep.
func (a *AttendanceServiceImpl) Rollover(ctx context.Context) (int, error) {
	today := dateOf(a.clock.Now())

	open, err := a.AttendanceRepository.ListOpenBefore(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list open attendances: %w", err)
	}

	closed := 0
	for _, rec := range open {
		endOfDay := rec.Date.Add(24*time.Hour - time.Second)
		next := rec.ForceClose(endOfDay)

		if err := a.AttendanceRepository.Update(ctx, next, rec.Status); err != nil {
			slog.Error("Rollover: failed to force-close attendance",
				"attendance_id", rec.ID,
				"user_id", rec.UserID,
				"date", rec.Date.Format("2006-01-02"),
				"error", err)
			continue
		}
		closed++
	}

	return closed, nil
}

func (a *AttendanceServiceImpl) mapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	now := a.clock.Now()

	liveWorked, err := attendance.LiveWorkedMinutes(att, now)
	if err != nil {
		liveWorked = att.TotalWorkedMinutes
	}
	liveBreak, err := attendance.LiveBreakMinutes(att, now)
	if err != nil {
		liveBreak = att.TotalBreakMinutes
	}

	return attendance.AttendanceResponse{
		ID:                 att.ID,
		UserID:             att.UserID,
		Date:               att.Date.Format("2006-01-02"),
		PunchInTime:        timePtrToString(att.PunchIn),
		PunchOutTime:       timePtrToString(att.PunchOut),
		BreakStart:         timePtrToString(att.BreakStart),
		Status:             att.Status,
		TotalWorkedMinutes: att.TotalWorkedMinutes,
		TotalBreakMinutes:  att.TotalBreakMinutes,
		LiveWorkedMinutes:  liveWorked,
		LiveBreakMinutes:   liveBreak,
		PunchInLatitude:    att.PunchInLatitude,
		PunchInLongitude:   att.PunchInLongitude,
		PunchOutLatitude:   att.PunchOutLatitude,
		PunchOutLongitude:  att.PunchOutLongitude,
		UserName:           att.UserName,
	}
}

func (a *AttendanceServiceImpl) mapToList(records []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, a.mapToResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}
