package calendar

import (
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/validator"
)

type CreatePostRequest struct {
	Title       string  `json:"title"`
	Body        *string `json:"body"`
	Channel     string  `json:"channel"`
	PublishDate string  `json:"publish_date"`
}

func (r *CreatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Channel) {
		errs = append(errs, validator.ValidationError{
			Field:   "channel",
			Message: "channel is required",
		})
	}

	if _, ok := validator.IsValidDate(r.PublishDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "publish_date",
			Message: "publish_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePostRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Body        *string `json:"body,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	PublishDate *string `json:"publish_date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.PublishDate != nil {
		if _, ok := validator.IsValidDate(*r.PublishDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "publish_date",
				Message: "publish_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(PostStatusDraft), string(PostStatusScheduled), string(PostStatusPublished),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, scheduled, published",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PostFilter struct {
	Channel   string `json:"channel"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (f *PostFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		string(PostStatusDraft), string(PostStatusScheduled), string(PostStatusPublished),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, scheduled, published",
		})
	}

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

type PostResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Body        *string `json:"body,omitempty"`
	Channel     string  `json:"channel"`
	PublishDate string  `json:"publish_date"`
	Status      string  `json:"status"`
	AuthorID    string  `json:"author_id"`
	AuthorName  *string `json:"author_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListPostResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Posts      []PostResponse `json:"posts"`
}
