package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "Admin" // Manages catalogs and exports reports
	RoleUser  Role = "User"  // Regular employee
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   *string   `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	EmployeeNumber *int      `json:"employee_number"`
	Group          *string   `json:"group"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName joins first and last name, trimmed.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// GroupName returns the group label or "".
func (u *User) GroupName() string {
	if u.Group == nil {
		return ""
	}
	return *u.Group
}

// Roles lists role names for API responses.
func (u *User) Roles() []string {
	return []string{string(u.Role)}
}
