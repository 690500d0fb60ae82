package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	Deactivate(ctx context.Context, id string) error
}
