package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrGoogleNotEnabled   = errors.New("google login is not configured")
	ErrStateMismatch      = errors.New("oauth state mismatch")
	ErrCodeValueEmpty     = errors.New("oauth code is empty")
)
