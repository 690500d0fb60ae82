package calendar

import (
	"context"
)

type CalendarService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (PostResponse, error)
	GetPost(ctx context.Context, id string) (PostResponse, error)
	ListPosts(ctx context.Context, filter PostFilter) (ListPostResponse, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (PostResponse, error)
	DeletePost(ctx context.Context, id string) error
}
