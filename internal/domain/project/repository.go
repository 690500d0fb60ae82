package project

import (
	"context"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, int64, error)
	Update(ctx context.Context, req UpdateProjectRequest) error
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListByProject(ctx context.Context, projectID string) ([]Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) error
	Delete(ctx context.Context, id string) error
}
