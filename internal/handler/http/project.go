package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/project"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", result)
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := project.ProjectFilter{
		Status: r.URL.Query().Get("status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.projectService.ListProjects(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.projectService.UpdateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", result)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// CreateTask implements ProjectHandler.
func (h *ProjectHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req project.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	result, err := h.projectService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", result)
}

// ListTasks implements ProjectHandler.
func (h *ProjectHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.ListTasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateTask implements ProjectHandler.
func (h *ProjectHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "taskID")

	result, err := h.projectService.UpdateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", result)
}

// DeleteTask implements ProjectHandler.
func (h *ProjectHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.DeleteTask(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}
