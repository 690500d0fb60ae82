package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can manage users and decide leave requests
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the user can administer users and approve requests.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
