package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/leave"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.leave_type, lr.day_type,
	lr.from_date, lr.to_date, lr.number_of_days, lr.reason,
	lr.status, lr.admin_comment, lr.decided_by, lr.decided_at,
	lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row, withUserName bool) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	dest := []interface{}{
		&lr.ID, &lr.UserID, &lr.LeaveType, &lr.DayType,
		&lr.FromDate, &lr.ToDate, &lr.NumberOfDays, &lr.Reason,
		&lr.Status, &lr.AdminComment, &lr.DecidedBy, &lr.DecidedAt,
		&lr.CreatedAt, &lr.UpdatedAt,
	}
	if withUserName {
		dest = append(dest, &lr.UserName)
	}
	return lr, row.Scan(dest...)
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			user_id, leave_type, day_type, from_date, to_date,
			number_of_days, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.UserID,
		request.LeaveType,
		request.DayType,
		request.FromDate,
		request.ToDate,
		request.NumberOfDays,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveRequestColumns + `,
			u.name AS user_name
		FROM leave_requests lr
		LEFT JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return request, nil
}

// GetByUserID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByUserID(ctx context.Context, userID string, filter leave.MyLeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	where := "lr.user_id = $1"
	args := []interface{}{userID}

	where, args = appendLeaveFilters(where, args, filter.Status, filter.LeaveType, filter.Year)

	return l.list(ctx, where, args, filter.Page, filter.Limit, false)
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	where := "1=1"
	var args []interface{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND lr.user_id = $%d", len(args))
	}

	where, args = appendLeaveFilters(where, args, filter.Status, filter.LeaveType, filter.Year)

	return l.list(ctx, where, args, filter.Page, filter.Limit, true)
}

func appendLeaveFilters(where string, args []interface{}, status, leaveType string, year int) (string, []interface{}) {
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND lr.status = $%d", len(args))
	}
	if leaveType != "" {
		args = append(args, leaveType)
		where += fmt.Sprintf(" AND lr.leave_type = $%d", len(args))
	}
	if year != 0 {
		args = append(args, year)
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM lr.from_date) = $%d", len(args))
	}
	return where, args
}

func (l *leaveRequestRepository) list(ctx context.Context, where string, args []interface{}, page, limit int, withUserName bool) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, l.db)

	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	columns := leaveRequestColumns
	join := ""
	if withUserName {
		columns += ", u.name AS user_name"
		join = " LEFT JOIN users u ON u.id = lr.user_id"
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr%s
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, columns, join, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows, withUserName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, total, rows.Err()
}

// Decide implements leave.LeaveRequestRepository. The write is guarded on
// status = pending, so a request can be decided exactly once.
func (l *leaveRequestRepository) Decide(ctx context.Context, id string, status leave.RequestStatus, decidedBy string, comment *string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests SET
			status = $1,
			decided_by = $2,
			decided_at = NOW(),
			admin_comment = $3,
			updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query, status, decidedBy, comment, id, leave.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to decide leave request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyDecided
	}

	return nil
}

// SumDays implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) SumDays(ctx context.Context, userID string, leaveType leave.LeaveType, year int, month int, statuses []leave.RequestStatus) (float64, error) {
	q := GetQuerier(ctx, l.db)

	where := "user_id = $1 AND leave_type = $2 AND EXTRACT(YEAR FROM from_date) = $3 AND status = ANY($4)"
	args := []interface{}{userID, leaveType, year, statuses}

	if month != 0 {
		args = append(args, month)
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM from_date) = $%d", len(args))
	}

	query := "SELECT COALESCE(SUM(number_of_days), 0) FROM leave_requests WHERE " + where

	var sum float64
	if err := q.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum leave days: %w", err)
	}

	return sum, nil
}
