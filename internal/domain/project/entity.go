package project

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type Project struct {
	ID          string
	Name        string
	Description *string
	Status      ProjectStatus
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	OwnerName *string
	TaskCount *int
}

type Task struct {
	ID         string
	ProjectID  string
	Title      string
	Details    *string
	AssigneeID *string
	Status     TaskStatus
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	AssigneeName *string
}
