package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/calendar"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// Create implements CalendarHandler.
func (h *CalendarHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreatePostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.calendarService.CreatePost(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Post created successfully", result)
}

// Get implements CalendarHandler.
func (h *CalendarHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CalendarHandler.
func (h *CalendarHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := calendar.PostFilter{
		Channel:   r.URL.Query().Get("channel"),
		Status:    r.URL.Query().Get("status"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.calendarService.ListPosts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements CalendarHandler.
func (h *CalendarHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpdatePostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.calendarService.UpdatePost(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Post updated successfully", result)
}

// Delete implements CalendarHandler.
func (h *CalendarHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.calendarService.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Post deleted successfully", nil)
}
