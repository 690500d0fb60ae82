package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/project"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) project.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `
	t.id, t.project_id, t.title, t.details, t.assignee_id,
	t.status, t.due_date, t.created_at, t.updated_at`

func scanTask(row pgx.Row, withAssigneeName bool) (project.Task, error) {
	var t project.Task
	dest := []interface{}{
		&t.ID, &t.ProjectID, &t.Title, &t.Details, &t.AssigneeID,
		&t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	}
	if withAssigneeName {
		dest = append(dest, &t.AssigneeName)
	}
	return t, row.Scan(dest...)
}

// Create implements project.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t project.Task) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (project_id, title, details, assignee_id, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ProjectID, t.Title, t.Details, t.AssigneeID, t.Status, t.DueDate,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return project.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID implements project.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `,
			u.name AS assignee_name
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assignee_id
		WHERE t.id = $1
	`

	t, err := scanTask(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Task{}, project.ErrTaskNotFound
		}
		return project.Task{}, fmt.Errorf("failed to get task by ID: %w", err)
	}

	return t, nil
}

// ListByProject implements project.TaskRepository.
func (r *taskRepository) ListByProject(ctx context.Context, projectID string) ([]project.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `,
			u.name AS assignee_name
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assignee_id
		WHERE t.project_id = $1
		ORDER BY t.created_at ASC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []project.Task
	for rows.Next() {
		t, err := scanTask(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update implements project.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, req project.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	setClause := "updated_at = NOW()"
	var args []interface{}

	if req.Title != nil {
		args = append(args, *req.Title)
		setClause += fmt.Sprintf(", title = $%d", len(args))
	}
	if req.Details != nil {
		args = append(args, *req.Details)
		setClause += fmt.Sprintf(", details = $%d", len(args))
	}
	if req.AssigneeID != nil {
		args = append(args, *req.AssigneeID)
		setClause += fmt.Sprintf(", assignee_id = $%d", len(args))
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		setClause += fmt.Sprintf(", status = $%d", len(args))
	}
	if req.DueDate != nil {
		args = append(args, *req.DueDate)
		setClause += fmt.Sprintf(", due_date = $%d", len(args))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d", setClause, len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return project.ErrTaskNotFound
	}

	return nil
}

// Delete implements project.TaskRepository.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return project.ErrTaskNotFound
	}

	return nil
}
