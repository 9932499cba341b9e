package seed

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedUsers_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(memory.NewStore())
	seeder := NewSeeder(repo)
	seeder.bcryptCost = bcrypt.MinCost

	created, err := seeder.SeedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(fixtures.GetDefaultUsers()), created)

	created, err = seeder.SeedUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	admin, err := repo.GetByEmail(ctx, "admin1@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.Equal(t, fixtures.AdminGroup, admin.GroupName())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte(fixtures.DefaultPassword)))

	groups, err := repo.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin", "Group1"}, groups)
}
