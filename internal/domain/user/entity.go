package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Company admin - manages employees, approvals, payroll
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	CompanyID       string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user can manage company records
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
