package user

import "time"

// UserResponse represents user data in API responses
type UserResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	EmployeeNumber *int    `json:"employee_number,omitempty"`
	Group          *string `json:"group,omitempty"`
	Role           string  `json:"role"`
	IsAdmin        bool    `json:"is_admin"`
	CreatedAt      string  `json:"created_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		EmployeeNumber: u.EmployeeNumber,
		Group:          u.Group,
		Role:           string(u.Role),
		IsAdmin:        u.IsAdmin(),
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
