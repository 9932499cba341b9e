package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// LoginWithGoogle signs in an already registered user by verified Google email.
	LoginWithGoogle(ctx context.Context, email string) (LoginResponse, error)
	Logout(ctx context.Context, accessToken string) error
}
