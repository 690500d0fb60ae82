package calendar

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/calendar"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type CalendarServiceImpl struct {
	db *database.DB
	calendar.ContentPostRepository
}

func NewCalendarService(db *database.DB, postRepo calendar.ContentPostRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		db:                    db,
		ContentPostRepository: postRepo,
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

// CreatePost implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreatePost(ctx context.Context, req calendar.CreatePostRequest) (calendar.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.PostResponse{}, err
	}

	authorID, err := userIDFromContext(ctx)
	if err != nil {
		return calendar.PostResponse{}, err
	}

	publishDate, _ := time.Parse("2006-01-02", req.PublishDate)

	created, err := s.ContentPostRepository.Create(ctx, calendar.ContentPost{
		Title:       req.Title,
		Body:        req.Body,
		Channel:     req.Channel,
		PublishDate: publishDate,
		Status:      calendar.PostStatusDraft,
		AuthorID:    authorID,
	})
	if err != nil {
		return calendar.PostResponse{}, fmt.Errorf("failed to create content post: %w", err)
	}

	return mapToResponse(created), nil
}

// GetPost implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetPost(ctx context.Context, id string) (calendar.PostResponse, error) {
	post, err := s.ContentPostRepository.GetByID(ctx, id)
	if err != nil {
		return calendar.PostResponse{}, err
	}

	return mapToResponse(post), nil
}

// ListPosts implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListPosts(ctx context.Context, filter calendar.PostFilter) (calendar.ListPostResponse, error) {
	if err := filter.Validate(); err != nil {
		return calendar.ListPostResponse{}, err
	}

	posts, total, err := s.ContentPostRepository.List(ctx, filter)
	if err != nil {
		return calendar.ListPostResponse{}, fmt.Errorf("failed to list content posts: %w", err)
	}

	responses := make([]calendar.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, mapToResponse(post))
	}

	return calendar.ListPostResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Posts:      responses,
	}, nil
}

// UpdatePost implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpdatePost(ctx context.Context, req calendar.UpdatePostRequest) (calendar.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.PostResponse{}, err
	}

	if err := s.ContentPostRepository.Update(ctx, req); err != nil {
		return calendar.PostResponse{}, err
	}

	updated, err := s.ContentPostRepository.GetByID(ctx, req.ID)
	if err != nil {
		return calendar.PostResponse{}, err
	}

	return mapToResponse(updated), nil
}

// DeletePost implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeletePost(ctx context.Context, id string) error {
	return s.ContentPostRepository.Delete(ctx, id)
}

func mapToResponse(post calendar.ContentPost) calendar.PostResponse {
	return calendar.PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Body:        post.Body,
		Channel:     post.Channel,
		PublishDate: post.PublishDate.Format("2006-01-02"),
		Status:      string(post.Status),
		AuthorID:    post.AuthorID,
		AuthorName:  post.AuthorName,
		CreatedAt:   post.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   post.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
