package user

import (
	"context"
)

// UserService defines admin-facing user management.
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListUsers(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	DeactivateUser(ctx context.Context, id string) error
}
