package user

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/user"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Role:         user.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapToResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	if err := filter.Validate(); err != nil {
		return user.ListUserResponse{}, err
	}

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapToResponse(u))
	}

	return user.ListUserResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Users:      responses,
	}, nil
}

// UpdateUser implements user.UserService. Profile fields and the password
// change inside one transaction so a failed password update never leaves a
// half-applied edit.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if req.Name != nil || req.Email != nil || req.Role != nil {
			if err := s.UserRepository.Update(txCtx, req); err != nil {
				return err
			}
		}

		if req.Password != nil {
			passwordHash, err := hashPassword(*req.Password)
			if err != nil {
				return err
			}
			if err := s.UserRepository.UpdatePassword(txCtx, req.ID, passwordHash); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapToResponse(updated), nil
}

// DeactivateUser implements user.UserService.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, id string) error {
	return s.UserRepository.Deactivate(ctx, id)
}

func mapToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
