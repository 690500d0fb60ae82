package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/worksheet"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/response"
)

type WorksheetHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type WorksheetHandlerImpl struct {
	worksheetService worksheet.WorksheetService
}

func NewWorksheetHandler(worksheetService worksheet.WorksheetService) WorksheetHandler {
	return &WorksheetHandlerImpl{worksheetService: worksheetService}
}

// Submit implements WorksheetHandler.
func (h *WorksheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req worksheet.SubmitWorksheetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitWorksheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.worksheetService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worksheet submitted successfully", result)
}

// My implements WorksheetHandler.
func (h *WorksheetHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	result, err := h.worksheetService.MyWorksheet(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorksheetHandler.
func (h *WorksheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worksheet.WorksheetFilter{
		UserID:    r.URL.Query().Get("user_id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.worksheetService.ListWorksheets(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
