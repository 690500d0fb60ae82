package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/attendance"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	BreakStart(w http.ResponseWriter, r *http.Request)
	BreakEnd(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Rollover(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// decodePunchRequest tolerates an empty body; location is optional.
func decodePunchRequest(r *http.Request) (attendance.PunchRequest, error) {
	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return attendance.PunchRequest{}, err
	}
	return req, nil
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	req, err := decodePunchRequest(r)
	if err != nil {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.PunchIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in successfully", resp)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	req, err := decodePunchRequest(r)
	if err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.PunchOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", resp)
}

// BreakStart implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BreakStart(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.BreakStart(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", resp)
}

// BreakEnd implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BreakEnd(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.BreakEnd(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", resp)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MyAttendanceFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Status:    r.URL.Query().Get("status"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	resp, err := h.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		UserID:    r.URL.Query().Get("user_id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Status:    r.URL.Query().Get("status"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	resp, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Rollover implements AttendanceHandler. Admin trigger for the same sweep
// the scheduler runs at midnight.
func (h *AttendanceHandlerImpl) Rollover(w http.ResponseWriter, r *http.Request) {
	closed, err := h.attendanceService.Rollover(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rollover completed", map[string]int{"closed": closed})
}

func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}
