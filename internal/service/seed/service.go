package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/fixtures"
	"golang.org/x/crypto/bcrypt"
)

// Seeder creates the default accounts that do not exist yet.
type Seeder struct {
	user.UserRepository
	bcryptCost int
}

func NewSeeder(userRepository user.UserRepository) *Seeder {
	return &Seeder{
		UserRepository: userRepository,
		bcryptCost:     bcrypt.DefaultCost,
	}
}

// SeedUsers returns the number of accounts created.
func (s *Seeder) SeedUsers(ctx context.Context) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(fixtures.DefaultPassword), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created := 0
	for _, su := range fixtures.GetDefaultUsers() {
		_, err := s.UserRepository.GetByEmail(ctx, su.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return created, fmt.Errorf("failed to look up %s: %w", su.Email, err)
		}

		group := su.Group()
		number := su.EmployeeNumber
		_, err = s.UserRepository.Create(ctx, user.User{
			Email:          su.Email,
			PasswordHash:   &hashed,
			FirstName:      su.FirstName,
			LastName:       su.LastName,
			EmployeeNumber: &number,
			Group:          &group,
			Role:           su.Role,
		})
		if err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", su.Email, err)
		}
		slog.Info("Seeded user", "email", su.Email, "role", su.Role)
		created++
	}
	return created, nil
}
