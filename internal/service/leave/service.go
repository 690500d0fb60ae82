package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/leave"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/clock"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

// balanceOrder fixes the order balances are reported in.
var balanceOrder = []leave.LeaveType{
	leave.LeaveTypePaid,
	leave.LeaveTypeSick,
	leave.LeaveTypeCasual,
}

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	quotas leave.QuotaPolicy
	clock  clock.Clock
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRequestRepository, quotas leave.QuotaPolicy, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
		quotas:                 quotas,
		clock:                  clk,
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

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	fromDate, _ := time.Parse("2006-01-02", req.FromDate)
	toDate, _ := time.Parse("2006-01-02", req.ToDate)

	days, err := leave.DaysRequested(fromDate, toDate, leave.DayType(req.DayType))
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request := leave.LeaveRequest{
		UserID:       userID,
		LeaveType:    leave.LeaveType(req.LeaveType),
		DayType:      leave.DayType(req.DayType),
		FromDate:     fromDate,
		ToDate:       toDate,
		NumberOfDays: days,
		Reason:       req.Reason,
		Status:       leave.RequestStatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapToResponse(created), nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error) {
	return l.decide(ctx, req, leave.RequestStatusApproved)
}

// RejectLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error) {
	return l.decide(ctx, req, leave.RequestStatusRejected)
}

func (l *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideRequestRequest, status leave.RequestStatus) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Load first so an unknown ID maps to not-found rather than the
	// guard miss of Decide.
	if _, err := l.LeaveRequestRepository.GetByID(ctx, req.ID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := l.LeaveRequestRepository.Decide(ctx, req.ID, status, adminID, req.Comment); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reload decided leave request: %w", err)
	}

	return mapToResponse(decided), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapToResponse(request), nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, filter leave.MyLeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := l.LeaveRequestRepository.GetByUserID(ctx, userID, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list my leave requests: %w", err)
	}

	return mapToList(requests, total, filter.Page, filter.Limit), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapToList(requests, total, filter.Page, filter.Limit), nil
}

// MyBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) MyBalance(ctx context.Context, year, month int, includePending bool) ([]leave.Balance, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return l.BalanceFor(ctx, userID, year, month, includePending)
}

// BalanceFor implements leave.LeaveService.
func (l *LeaveServiceImpl) BalanceFor(ctx context.Context, userID string, year, month int, includePending bool) ([]leave.Balance, error) {
	if year == 0 {
		year = l.clock.Now().Year()
	}
	if month < 0 || month > 12 {
		return nil, leave.ErrInvalidLeaveRange
	}

	balances := make([]leave.Balance, 0, len(balanceOrder))
	for _, leaveType := range balanceOrder {
		taken, err := l.LeaveRequestRepository.SumDays(ctx, userID, leaveType, year, month,
			[]leave.RequestStatus{leave.RequestStatusApproved})
		if err != nil {
			return nil, fmt.Errorf("failed to sum taken days: %w", err)
		}

		var pending float64
		if includePending {
			pending, err = l.LeaveRequestRepository.SumDays(ctx, userID, leaveType, year, month,
				[]leave.RequestStatus{leave.RequestStatusPending})
			if err != nil {
				return nil, fmt.Errorf("failed to sum pending days: %w", err)
			}
		}

		quota := l.quotas[leaveType]
		balances = append(balances, leave.Balance{
			LeaveType: leaveType,
			Taken:     taken,
			Pending:   pending,
			Quota:     quota,
			Remaining: quota - taken - pending,
		})
	}

	return balances, nil
}

func mapToResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           request.ID,
		UserID:       request.UserID,
		LeaveType:    request.LeaveType,
		DayType:      request.DayType,
		FromDate:     request.FromDate.Format("2006-01-02"),
		ToDate:       request.ToDate.Format("2006-01-02"),
		NumberOfDays: request.NumberOfDays,
		Reason:       request.Reason,
		Status:       request.Status,
		AdminComment: request.AdminComment,
		DecidedBy:    request.DecidedBy,
		UserName:     request.UserName,
		CreatedAt:    request.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if request.DecidedAt != nil {
		decidedAt := request.DecidedAt.Format("2006-01-02 15:04:05")
		resp.DecidedAt = &decidedAt
	}

	return resp
}

func mapToList(requests []leave.LeaveRequest, total int64, page, limit int) leave.ListLeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapToResponse(request))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Requests:   responses,
	}
}
