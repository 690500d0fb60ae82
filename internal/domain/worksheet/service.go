package worksheet

import (
	"context"
)

type WorksheetService interface {
	// Submit creates or replaces the acting user's worksheet for a date.
	Submit(ctx context.Context, req SubmitWorksheetRequest) (WorksheetResponse, error)

	// MyWorksheet returns the acting user's worksheet for a date.
	MyWorksheet(ctx context.Context, date string) (WorksheetResponse, error)

	// ListWorksheets retrieves worksheets with filters (admin sees all
	// users; others are scoped to themselves by the caller).
	ListWorksheets(ctx context.Context, filter WorksheetFilter) (ListWorksheetResponse, error)
}
