package auth

import (
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	EmailAddress    string `json:"email_address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	EmployeeNumber  *int   `json:"employee_number"`
	Group           string `json:"group"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmailAddress = strings.TrimSpace(r.EmailAddress)

	// Email
	if validator.IsEmpty(r.EmailAddress) {
		errs.Add("email_address", "email_address is required")
	} else if !validator.IsValidEmail(r.EmailAddress) {
		errs.Add("email_address", "email_address must be a valid email address")
	} else if len(r.EmailAddress) > 254 {
		errs.Add("email_address", "email_address must not exceed 254 characters")
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < 8 {
		errs.Add("password", "password must be at least 8 characters long")
	} else if len(r.Password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}
	if validator.IsEmpty(r.ConfirmPassword) {
		errs.Add("confirm_password", "confirm_password is required")
	} else if r.ConfirmPassword != r.Password {
		errs.Add("confirm_password", "Password do not match")
	}

	// Profile
	if validator.IsEmpty(r.FirstName) {
		errs.Add("first_name", "first_name is required")
	}
	if validator.IsEmpty(r.LastName) {
		errs.Add("last_name", "last_name is required")
	}
	if r.EmployeeNumber == nil {
		errs.Add("employee_number", "employee_number is required")
	} else if *r.EmployeeNumber <= 0 {
		errs.Add("employee_number", "employee_number must be a positive number")
	}
	if validator.IsEmpty(r.Group) {
		errs.Add("group", "group is required")
	}

	return errs.Err()
}

type LoginRequest struct {
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmailAddress = strings.TrimSpace(r.EmailAddress)
	if validator.IsEmpty(r.EmailAddress) {
		errs.Add("email_address", "email_address is required")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type LoginResponse struct {
	Message     string   `json:"message"`
	UserID      string   `json:"user_id"`
	Roles       []string `json:"roles"`
	IsAdmin     bool     `json:"is_admin"`
	AccessToken string   `json:"access_token"`
	ExpiresAt   int64    `json:"expires_at"`
}
