package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/leave"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.CreateLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// GetRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	resp, err := h.leaveService.GetLeaveRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.MyLeaveRequestFilter{
		Status:    r.URL.Query().Get("status"),
		LeaveType: r.URL.Query().Get("leave_type"),
		Year:      queryInt(r, "year"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	resp, err := h.leaveService.ListMyLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{
		UserID:    r.URL.Query().Get("user_id"),
		Status:    r.URL.Query().Get("status"),
		LeaveType: r.URL.Query().Get("leave_type"),
		Year:      queryInt(r, "year"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	resp, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

type decideRequestBody struct {
	Comment *string `json:"comment"`
}

func (h *LeaveHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(r *http.Request, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error),
	message string,
) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var body decideRequestBody
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			slog.Error("decide decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	resp, err := fn(r, leave.DecideRequestRequest{ID: id, Comment: body.Comment})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, resp)
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(r *http.Request, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error) {
		return h.leaveService.ApproveLeaveRequest(r.Context(), req)
	}, "Leave request approved")
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(r *http.Request, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error) {
		return h.leaveService.RejectLeaveRequest(r.Context(), req)
	}, "Leave request rejected")
}

// GetMyBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	balances, err := h.leaveService.MyBalance(r.Context(),
		queryInt(r, "year"),
		queryInt(r, "month"),
		r.URL.Query().Get("include_pending") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// GetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	balances, err := h.leaveService.BalanceFor(r.Context(), userID,
		queryInt(r, "year"),
		queryInt(r, "month"),
		r.URL.Query().Get("include_pending") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}
