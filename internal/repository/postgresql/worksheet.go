package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/worksheet"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type worksheetRepository struct {
	db *database.DB
}

func NewWorksheetRepository(db *database.DB) worksheet.WorksheetRepository {
	return &worksheetRepository{db: db}
}

// Upsert implements worksheet.WorksheetRepository. The unique (user_id, date)
// index turns a resubmission into a replacement.
func (r *worksheetRepository) Upsert(ctx context.Context, ws worksheet.Worksheet) (worksheet.Worksheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worksheets (user_id, date, summary, project_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET
			summary = EXCLUDED.summary,
			project_id = EXCLUDED.project_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, ws.UserID, ws.Date, ws.Summary, ws.ProjectID).
		Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("failed to upsert worksheet: %w", err)
	}

	return ws, nil
}

// GetByUserAndDate implements worksheet.WorksheetRepository.
func (r *worksheetRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (worksheet.Worksheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.user_id, w.date, w.summary, w.project_id,
			w.created_at, w.updated_at,
			p.name AS project_name
		FROM worksheets w
		LEFT JOIN projects p ON p.id = w.project_id
		WHERE w.user_id = $1 AND w.date = $2
	`

	var ws worksheet.Worksheet
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&ws.ID, &ws.UserID, &ws.Date, &ws.Summary, &ws.ProjectID,
		&ws.CreatedAt, &ws.UpdatedAt,
		&ws.ProjectName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worksheet.Worksheet{}, worksheet.ErrWorksheetNotFound
		}
		return worksheet.Worksheet{}, fmt.Errorf("failed to get worksheet: %w", err)
	}

	return ws, nil
}

// List implements worksheet.WorksheetRepository.
func (r *worksheetRepository) List(ctx context.Context, filter worksheet.WorksheetFilter) ([]worksheet.Worksheet, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	var args []interface{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND w.user_id = $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(" AND w.date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(" AND w.date <= $%d", len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM worksheets w WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count worksheets: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT w.id, w.user_id, w.date, w.summary, w.project_id,
			w.created_at, w.updated_at,
			u.name AS user_name,
			p.name AS project_name
		FROM worksheets w
		LEFT JOIN users u ON u.id = w.user_id
		LEFT JOIN projects p ON p.id = w.project_id
		WHERE %s
		ORDER BY w.date DESC, w.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list worksheets: %w", err)
	}
	defer rows.Close()

	var worksheets []worksheet.Worksheet
	for rows.Next() {
		var ws worksheet.Worksheet
		if err := rows.Scan(
			&ws.ID, &ws.UserID, &ws.Date, &ws.Summary, &ws.ProjectID,
			&ws.CreatedAt, &ws.UpdatedAt,
			&ws.UserName, &ws.ProjectName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan worksheet: %w", err)
		}
		worksheets = append(worksheets, ws)
	}

	return worksheets, total, rows.Err()
}
