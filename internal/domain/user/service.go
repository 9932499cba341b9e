package user

import "context"

type UserService interface {
	// List returns every user, or only the group's members when group is set.
	List(ctx context.Context, group string) ([]UserResponse, error)
}
