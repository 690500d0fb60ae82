package calendar

import (
	"context"
)

type ContentPostRepository interface {
	Create(ctx context.Context, post ContentPost) (ContentPost, error)
	GetByID(ctx context.Context, id string) (ContentPost, error)
	List(ctx context.Context, filter PostFilter) ([]ContentPost, int64, error)
	Update(ctx context.Context, req UpdatePostRequest) error
	Delete(ctx context.Context, id string) error
}
