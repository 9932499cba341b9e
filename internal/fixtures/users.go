package fixtures

import "github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "Coding@1234?"

const (
	AdminGroup   = "Admin"
	DefaultGroup = "Group1"
)

// SeedUser describes one account created by the seed command.
type SeedUser struct {
	Email          string
	FirstName      string
	LastName       string
	EmployeeNumber int
	Role           user.Role
}

// Group returns the group a seeded account is placed in.
func (s SeedUser) Group() string {
	if s.Role == user.RoleAdmin {
		return AdminGroup
	}
	return DefaultGroup
}

// ==========================================
// DEFAULT USERS
// ==========================================

// GetDefaultUsers returns the demo administrators and employees
func GetDefaultUsers() []SeedUser {
	return []SeedUser{
		{Email: "admin1@test.com", FirstName: "AdminFirstName1", LastName: "AdminLastName1", EmployeeNumber: 1234, Role: user.RoleAdmin},
		{Email: "admin2@test.com", FirstName: "AdminFirstName2", LastName: "AdminLastName2", EmployeeNumber: 5678, Role: user.RoleAdmin},
		{Email: "user1@test.com", FirstName: "UserFirstName1", LastName: "UserLastName1", EmployeeNumber: 9876, Role: user.RoleUser},
		{Email: "user2@test.com", FirstName: "UserFirstName2", LastName: "UserLastName2", EmployeeNumber: 5432, Role: user.RoleUser},
		{Email: "user3@test.com", FirstName: "UserFirstName3", LastName: "UserLastName3", EmployeeNumber: 3456, Role: user.RoleUser},
		{Email: "user4@test.com", FirstName: "UserFirstName4", LastName: "UserLastName4", EmployeeNumber: 6789, Role: user.RoleUser},
		{Email: "user5@test.com", FirstName: "UserFirstName5", LastName: "UserLastName5", EmployeeNumber: 2345, Role: user.RoleUser},
		{Email: "user6@test.com", FirstName: "UserFirstName6", LastName: "UserLastName6", EmployeeNumber: 4567, Role: user.RoleUser},
	}
}
