package worksheet

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/worksheet"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type WorksheetServiceImpl struct {
	db *database.DB
	worksheet.WorksheetRepository
}

func NewWorksheetService(db *database.DB, worksheetRepo worksheet.WorksheetRepository) worksheet.WorksheetService {
	return &WorksheetServiceImpl{
		db:                  db,
		WorksheetRepository: worksheetRepo,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Submit implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) Submit(ctx context.Context, req worksheet.SubmitWorksheetRequest) (worksheet.WorksheetResponse, error) {
	if err := req.Validate(); err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	ws, err := s.WorksheetRepository.Upsert(ctx, worksheet.Worksheet{
		UserID:    userID,
		Date:      date,
		Summary:   req.Summary,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		return worksheet.WorksheetResponse{}, fmt.Errorf("failed to submit worksheet: %w", err)
	}

	return mapToResponse(ws), nil
}

// MyWorksheet implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) MyWorksheet(ctx context.Context, date string) (worksheet.WorksheetResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return worksheet.WorksheetResponse{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	ws, err := s.WorksheetRepository.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	return mapToResponse(ws), nil
}

// ListWorksheets implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) ListWorksheets(ctx context.Context, filter worksheet.WorksheetFilter) (worksheet.ListWorksheetResponse, error) {
	if err := filter.Validate(); err != nil {
		return worksheet.ListWorksheetResponse{}, err
	}

	worksheets, total, err := s.WorksheetRepository.List(ctx, filter)
	if err != nil {
		return worksheet.ListWorksheetResponse{}, fmt.Errorf("failed to list worksheets: %w", err)
	}

	responses := make([]worksheet.WorksheetResponse, 0, len(worksheets))
	for _, ws := range worksheets {
		responses = append(responses, mapToResponse(ws))
	}

	return worksheet.ListWorksheetResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Worksheets: responses,
	}, nil
}

func mapToResponse(ws worksheet.Worksheet) worksheet.WorksheetResponse {
	return worksheet.WorksheetResponse{
		ID:          ws.ID,
		UserID:      ws.UserID,
		UserName:    ws.UserName,
		Date:        ws.Date.Format("2006-01-02"),
		Summary:     ws.Summary,
		ProjectID:   ws.ProjectID,
		ProjectName: ws.ProjectName,
		CreatedAt:   ws.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   ws.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
