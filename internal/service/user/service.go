package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, group string) ([]user.UserResponse, error) {
	users, err := s.UserRepository.ListByGroup(ctx, strings.TrimSpace(group))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.NewUserResponses(users), nil
}
