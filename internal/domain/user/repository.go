package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context) ([]User, error)
	// ListByGroup returns every user when group is empty.
	ListByGroup(ctx context.Context, group string) ([]User, error)
	// ListGroups returns the distinct, non-empty group labels sorted ascending.
	ListGroups(ctx context.Context) ([]string, error)
}
