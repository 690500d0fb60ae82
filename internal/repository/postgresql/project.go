package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/project"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (name, description, status, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.Name, p.Description, p.Status, p.OwnerID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.status, p.owner_id,
			p.created_at, p.updated_at,
			u.name AS owner_name,
			(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) AS task_count
		FROM projects p
		LEFT JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.OwnerID,
		&p.CreatedAt, &p.UpdatedAt,
		&p.OwnerName, &p.TaskCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND p.status = $%d", len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM projects p WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.description, p.status, p.owner_id,
			p.created_at, p.updated_at,
			u.name AS owner_name,
			(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) AS task_count
		FROM projects p
		LEFT JOIN users u ON u.id = p.owner_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Status, &p.OwnerID,
			&p.CreatedAt, &p.UpdatedAt,
			&p.OwnerName, &p.TaskCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, total, rows.Err()
}

// Update implements project.ProjectRepository.
func (r *projectRepository) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	setClause := "updated_at = NOW()"
	var args []interface{}

	if req.Name != nil {
		args = append(args, *req.Name)
		setClause += fmt.Sprintf(", name = $%d", len(args))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		setClause += fmt.Sprintf(", description = $%d", len(args))
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		setClause += fmt.Sprintf(", status = $%d", len(args))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", setClause, len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}
