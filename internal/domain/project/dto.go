package project

import (
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(ProjectStatusActive), string(ProjectStatusOnHold), string(ProjectStatusCompleted),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, on_hold, completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateTaskRequest struct {
	ProjectID  string  `json:"project_id"`
	Title      string  `json:"title"`
	Details    *string `json:"details"`
	AssigneeID *string `json:"assignee_id"`
	DueDate    *string `json:"due_date"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID         string  `json:"id"`
	Title      *string `json:"title,omitempty"`
	Details    *string `json:"details,omitempty"`
	AssigneeID *string `json:"assignee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(TaskStatusTodo), string(TaskStatusInProgress), string(TaskStatusDone),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of todo, in_progress, done",
		})
	}

	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectFilter struct {
	Status string `json:"status"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

func (f *ProjectFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		string(ProjectStatusActive), string(ProjectStatusOnHold), string(ProjectStatusCompleted),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, on_hold, completed",
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	OwnerID     string  `json:"owner_id"`
	OwnerName   *string `json:"owner_name,omitempty"`
	TaskCount   *int    `json:"task_count,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TaskResponse struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"project_id"`
	Title        string  `json:"title"`
	Details      *string `json:"details,omitempty"`
	AssigneeID   *string `json:"assignee_id,omitempty"`
	AssigneeName *string `json:"assignee_name,omitempty"`
	Status       string  `json:"status"`
	DueDate      *string `json:"due_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListProjectResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Projects   []ProjectResponse `json:"projects"`
}
