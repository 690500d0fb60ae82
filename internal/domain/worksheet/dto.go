package worksheet

import (
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/validator"
)

// SubmitWorksheetRequest creates or replaces the acting user's summary for a
// date (one worksheet per user per day, upsert-style).
type SubmitWorksheetRequest struct {
	Date      string  `json:"date"`
	Summary   string  `json:"summary"`
	ProjectID *string `json:"project_id"`
}

func (r *SubmitWorksheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Summary) {
		errs = append(errs, validator.ValidationError{
			Field:   "summary",
			Message: "summary is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorksheetFilter struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (f *WorksheetFilter) Validate() error {
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

type WorksheetResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	Date        string  `json:"date"`
	Summary     string  `json:"summary"`
	ProjectID   *string `json:"project_id,omitempty"`
	ProjectName *string `json:"project_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListWorksheetResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Worksheets []WorksheetResponse `json:"worksheets"`
}
