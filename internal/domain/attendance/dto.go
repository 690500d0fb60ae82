package attendance

import (
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// PunchRequest carries the optional advisory location for a punch-in or
// punch-out.
type PunchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Geo returns the request location, or nil when none was sent.
func (r *PunchRequest) Geo() *Geo {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &Geo{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

type MyAttendanceFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		string(StatusPunchedIn), string(StatusOnBreak), string(StatusPunchedOut),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of punched_in, on_break, punched_out",
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

type AttendanceFilter struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	inner := MyAttendanceFilter{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
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

type AttendanceResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date"`

	PunchInTime  *string `json:"punch_in_time"`
	PunchOutTime *string `json:"punch_out_time"`
	BreakStart   *string `json:"break_start,omitempty"`

	Status Status `json:"status"`

	TotalWorkedMinutes int `json:"total_worked_minutes"`
	TotalBreakMinutes  int `json:"total_break_minutes"`

	// Live totals include the open segment as of the server clock; clients
	// tick from these locally between syncs.
	LiveWorkedMinutes int `json:"live_worked_minutes"`
	LiveBreakMinutes  int `json:"live_break_minutes"`

	PunchInLatitude   *float64 `json:"punch_in_latitude,omitempty"`
	PunchInLongitude  *float64 `json:"punch_in_longitude,omitempty"`
	PunchOutLatitude  *float64 `json:"punch_out_latitude,omitempty"`
	PunchOutLongitude *float64 `json:"punch_out_longitude,omitempty"`

	UserName *string `json:"user_name,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
