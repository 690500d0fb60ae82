package project

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/project"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	project.TaskRepository
}

func NewProjectService(db *database.DB, projectRepo project.ProjectRepository, taskRepo project.TaskRepository) project.ProjectService {
	return &ProjectServiceImpl{
		db:                db,
		ProjectRepository: projectRepo,
		TaskRepository:    taskRepo,
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

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	ownerID, err := userIDFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      project.ProjectStatusActive,
		OwnerID:     ownerID,
	})
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}

	return mapProjectToResponse(created), nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(p), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filter project.ProjectFilter) (project.ListProjectResponse, error) {
	if err := filter.Validate(); err != nil {
		return project.ListProjectResponse{}, err
	}

	projects, total, err := s.ProjectRepository.List(ctx, filter)
	if err != nil {
		return project.ListProjectResponse{}, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, mapProjectToResponse(p))
	}

	return project.ListProjectResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Projects:   responses,
	}, nil
}

// UpdateProject implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.ProjectRepository.Update(ctx, req); err != nil {
		return project.ProjectResponse{}, err
	}

	updated, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(updated), nil
}

// DeleteProject implements project.ProjectService.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.ProjectRepository.Delete(ctx, id)
}

// CreateTask implements project.ProjectService.
func (s *ProjectServiceImpl) CreateTask(ctx context.Context, req project.CreateTaskRequest) (project.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return project.TaskResponse{}, err
	}

	// The project must exist; a dangling task row helps nobody.
	if _, err := s.ProjectRepository.GetByID(ctx, req.ProjectID); err != nil {
		return project.TaskResponse{}, err
	}

	task := project.Task{
		ProjectID:  req.ProjectID,
		Title:      req.Title,
		Details:    req.Details,
		AssigneeID: req.AssigneeID,
		Status:     project.TaskStatusTodo,
	}

	if req.DueDate != nil {
		dueDate, _ := time.Parse("2006-01-02", *req.DueDate)
		task.DueDate = &dueDate
	}

	created, err := s.TaskRepository.Create(ctx, task)
	if err != nil {
		return project.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return mapTaskToResponse(created), nil
}

// ListTasks implements project.ProjectService.
func (s *ProjectServiceImpl) ListTasks(ctx context.Context, projectID string) ([]project.TaskResponse, error) {
	if _, err := s.ProjectRepository.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepository.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]project.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, mapTaskToResponse(t))
	}

	return responses, nil
}

// UpdateTask implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateTask(ctx context.Context, req project.UpdateTaskRequest) (project.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return project.TaskResponse{}, err
	}

	if err := s.TaskRepository.Update(ctx, req); err != nil {
		return project.TaskResponse{}, err
	}

	updated, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.TaskResponse{}, err
	}

	return mapTaskToResponse(updated), nil
}

// DeleteTask implements project.ProjectService.
func (s *ProjectServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return s.TaskRepository.Delete(ctx, id)
}

func mapProjectToResponse(p project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		OwnerID:     p.OwnerID,
		OwnerName:   p.OwnerName,
		TaskCount:   p.TaskCount,
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapTaskToResponse(t project.Task) project.TaskResponse {
	resp := project.TaskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		Title:        t.Title,
		Details:      t.Details,
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	if t.DueDate != nil {
		dueDate := t.DueDate.Format("2006-01-02")
		resp.DueDate = &dueDate
	}

	return resp
}
