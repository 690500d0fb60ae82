package leave

import (
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type CreateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type"`
	DayType   string `json:"day_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{
		string(LeaveTypePaid), string(LeaveTypeSick), string(LeaveTypeCasual),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of paid, sick, casual",
		})
	}

	if !validator.IsInSlice(r.DayType, []string{string(DayTypeFull), string(DayTypeHalf)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_type",
			Message: "day_type must be full or half",
		})
	}

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequestRequest struct {
	ID      string  `json:"id"`
	Comment *string `json:"comment"`
}

func (r *DecideRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyLeaveRequestFilter struct {
	Status    string `json:"status"`
	LeaveType string `json:"leave_type"`
	Year      int    `json:"year"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (f *MyLeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		string(RequestStatusPending), string(RequestStatusApproved), string(RequestStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}

	if f.LeaveType != "" && !validator.IsInSlice(f.LeaveType, []string{
		string(LeaveTypePaid), string(LeaveTypeSick), string(LeaveTypeCasual),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of paid, sick, casual",
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestFilter struct {
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	LeaveType string `json:"leave_type"`
	Year      int    `json:"year"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (f *LeaveRequestFilter) Validate() error {
	inner := MyLeaveRequestFilter{
		Status:    f.Status,
		LeaveType: f.LeaveType,
		Year:      f.Year,
		Page:      f.Page,
		Limit:     f.Limit,
	}
	if err := inner.Validate(); err != nil {
		return err
	}
	f.Page = inner.Page
	f.Limit = inner.Limit
	return nil
}

type LeaveRequestResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	LeaveType    LeaveType `json:"leave_type"`
	DayType      DayType   `json:"day_type"`
	FromDate     string    `json:"from_date"`
	ToDate       string    `json:"to_date"`
	NumberOfDays float64   `json:"number_of_days"`
	Reason       string    `json:"reason"`

	Status       RequestStatus `json:"status"`
	AdminComment *string       `json:"admin_comment,omitempty"`
	DecidedBy    *string       `json:"decided_by,omitempty"`
	DecidedAt    *string       `json:"decided_at,omitempty"`

	UserName  *string `json:"user_name,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ListLeaveRequestResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Requests   []LeaveRequestResponse `json:"requests"`
}
