package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	GetByUserID(ctx context.Context, userID string, filter MyLeaveRequestFilter) ([]LeaveRequest, int64, error)

	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// Decide moves a pending request to approved or rejected. The write is
	// guarded on status = pending; when the request was already decided,
	// zero rows match and ErrAlreadyDecided is returned.
	Decide(ctx context.Context, id string, status RequestStatus, decidedBy string, comment *string) error

	// SumDays totals number_of_days for a user, leave type, period and set
	// of statuses. Month 0 means the whole year.
	SumDays(ctx context.Context, userID string, leaveType LeaveType, year int, month int, statuses []RequestStatus) (float64, error)
}
