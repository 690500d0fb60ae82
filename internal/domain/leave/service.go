package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests and balances.
type LeaveService interface {
	// CreateLeaveRequest submits a request for the acting user in pending
	// state, deriving number_of_days from the range and day type.
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// ApproveLeaveRequest decides a pending request (admin).
	ApproveLeaveRequest(ctx context.Context, req DecideRequestRequest) (LeaveRequestResponse, error)

	// RejectLeaveRequest decides a pending request (admin).
	RejectLeaveRequest(ctx context.Context, req DecideRequestRequest) (LeaveRequestResponse, error)

	// GetLeaveRequest retrieves a single request by ID.
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	// ListMyLeaveRequests retrieves the acting user's requests.
	ListMyLeaveRequests(ctx context.Context, filter MyLeaveRequestFilter) (ListLeaveRequestResponse, error)

	// ListLeaveRequests retrieves requests across users (admin).
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	// MyBalance reports taken-vs-quota for the acting user, one entry per
	// leave type. Month 0 reports the whole year.
	MyBalance(ctx context.Context, year, month int, includePending bool) ([]Balance, error)

	// BalanceFor reports taken-vs-quota for any user (admin).
	BalanceFor(ctx context.Context, userID string, year, month int, includePending bool) ([]Balance, error)
}
