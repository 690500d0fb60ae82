package project

import (
	"context"
)

type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetProject(ctx context.Context, id string) (ProjectResponse, error)
	ListProjects(ctx context.Context, filter ProjectFilter) (ListProjectResponse, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error

	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	ListTasks(ctx context.Context, projectID string) ([]TaskResponse, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}
