package auth

// Caller identifies the authenticated principal of a request.
type Caller struct {
	UserID  string
	Email   string
	IsAdmin bool
}
