package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/attendance"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date,
	a.punch_in, a.punch_out, a.break_start, a.break_end,
	a.total_worked_minutes, a.total_break_minutes, a.status,
	a.punch_in_latitude, a.punch_in_longitude,
	a.punch_out_latitude, a.punch_out_longitude,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, withUserName bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.UserID, &att.Date,
		&att.PunchIn, &att.PunchOut, &att.BreakStart, &att.BreakEnd,
		&att.TotalWorkedMinutes, &att.TotalBreakMinutes, &att.Status,
		&att.PunchInLatitude, &att.PunchInLongitude,
		&att.PunchOutLatitude, &att.PunchOutLongitude,
		&att.CreatedAt, &att.UpdatedAt,
	}
	if withUserName {
		dest = append(dest, &att.UserName)
	}
	return att, row.Scan(dest...)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, date, punch_in, status,
			total_worked_minutes, total_break_minutes,
			punch_in_latitude, punch_in_longitude
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.UserID,
		newAttendance.Date,
		newAttendance.PunchIn,
		newAttendance.Status,
		newAttendance.TotalWorkedMinutes,
		newAttendance.TotalBreakMinutes,
		newAttendance.PunchInLatitude,
		newAttendance.PunchInLongitude,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: the unique (user_id, date) index caught a concurrent
		// punch-in for the same day.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			u.name AS user_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository. The write is guarded on
// the status the caller read; a zero-row update means another writer moved
// the record first.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance, expected attendance.Status) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			punch_in = $1,
			punch_out = $2,
			break_start = $3,
			break_end = $4,
			total_worked_minutes = $5,
			total_break_minutes = $6,
			status = $7,
			punch_out_latitude = $8,
			punch_out_longitude = $9,
			updated_at = NOW()
		WHERE id = $10 AND status = $11
	`

	tag, err := q.Exec(ctx, query,
		att.PunchIn,
		att.PunchOut,
		att.BreakStart,
		att.BreakEnd,
		att.TotalWorkedMinutes,
		att.TotalBreakMinutes,
		att.Status,
		att.PunchOutLatitude,
		att.PunchOutLongitude,
		att.ID,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrInvalidTransition
	}

	return nil
}

// ListOpenBefore implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.date < $1 AND a.status != $2
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, day, attendance.StatusPunchedOut)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	where := "a.user_id = $1"
	args := []interface{}{userID}

	where, args = appendAttendanceFilters(where, args, filter.StartDate, filter.EndDate, filter.Status)

	return a.list(ctx, where, args, filter.Page, filter.Limit, false)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	where := "1=1"
	var args []interface{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND a.user_id = $%d", len(args))
	}

	where, args = appendAttendanceFilters(where, args, filter.StartDate, filter.EndDate, filter.Status)

	return a.list(ctx, where, args, filter.Page, filter.Limit, true)
}

func appendAttendanceFilters(where string, args []interface{}, startDate, endDate, status string) (string, []interface{}) {
	if startDate != "" {
		args = append(args, startDate)
		where += fmt.Sprintf(" AND a.date >= $%d", len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		where += fmt.Sprintf(" AND a.date <= $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND a.status = $%d", len(args))
	}
	return where, args
}

func (a *attendanceRepository) list(ctx context.Context, where string, args []interface{}, page, limit int, withUserName bool) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	columns := attendanceColumns
	join := ""
	if withUserName {
		columns += ", u.name AS user_name"
		join = " LEFT JOIN users u ON u.id = a.user_id"
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a%s
		WHERE %s
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, columns, join, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, withUserName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}
