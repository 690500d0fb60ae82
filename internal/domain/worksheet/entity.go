package worksheet

import "time"

// Worksheet is one free-text work summary per (user, calendar date).
type Worksheet struct {
	ID        string
	UserID    string
	Date      time.Time
	Summary   string
	ProjectID *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName    *string
	ProjectName *string
}
