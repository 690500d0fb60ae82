package worksheet

import (
	"context"
	"time"
)

type WorksheetRepository interface {
	// Upsert inserts or replaces the (user, date) worksheet.
	Upsert(ctx context.Context, ws Worksheet) (Worksheet, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Worksheet, error)
	List(ctx context.Context, filter WorksheetFilter) ([]Worksheet, int64, error)
}
