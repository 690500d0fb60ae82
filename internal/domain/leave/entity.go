package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
)

type DayType string

const (
	DayTypeFull DayType = "full"
	DayTypeHalf DayType = "half"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LeaveRequest is one leave application. It is created pending, decided
// exactly once, and never deleted.
type LeaveRequest struct {
	ID     string
	UserID string

	LeaveType LeaveType
	DayType   DayType

	FromDate time.Time
	ToDate   time.Time

	// NumberOfDays supports 0.5 increments for half-day requests.
	NumberOfDays float64

	Reason string

	Status       RequestStatus
	AdminComment *string
	DecidedBy    *string
	DecidedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName *string
}

// Balance is the taken-vs-quota summary for one leave type and period. Quota
// is externally supplied policy, never computed here.
type Balance struct {
	LeaveType LeaveType `json:"leave_type"`
	Taken     float64   `json:"taken"`
	Pending   float64   `json:"pending"`
	Quota     float64   `json:"quota"`
	Remaining float64   `json:"remaining"`
}

// QuotaPolicy maps each leave type to its allowance for the period being
// reported. Values come from configuration.
type QuotaPolicy map[LeaveType]float64
