package calendar

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

// ContentPost is an entry on the content calendar.
type ContentPost struct {
	ID          string
	Title       string
	Body        *string
	Channel     string
	PublishDate time.Time
	Status      PostStatus
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	AuthorName *string
}
