package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/authz"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/constants"
	"asset-system/pkg/utils"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewRegistry()
	require.NoError(t, Seed(ctx, repo, zap.NewNop()))

	assert.Equal(t, len(usersData), repo.Users.Count())
	assert.Equal(t, len(plantsData), repo.Plants.Count())
	assert.Equal(t, len(assetsData), repo.Assets.Count())
	assert.Equal(t, len(maintenanceData), repo.Maintenance.Count())
	assert.Equal(t, len(calibrationData), repo.Calibration.Count())

	for _, rec := range repo.Maintenance.List(ctx) {
		assert.Equal(t, constants.MaintenanceStatusPending, rec.Status)
		assert.NotZero(t, rec.RequestedBy)
	}
}

func TestSeedUsersCoverPolicy(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewRegistry()
	require.NoError(t, Seed(ctx, repo, zap.NewNop()))

	seen := map[constants.Position]bool{}
	for _, u := range repo.Users.List(ctx) {
		if p, ok := u.PositionCode(); ok {
			seen[p] = true
		}
		assert.NoError(t, utils.ComparePasswords(u.Password, SeedPassword), u.EmployeeCode)
	}
	for _, p := range constants.AllPositions() {
		assert.True(t, seen[p], "нет пользователя с должностью %s", p)
	}

	find := func(code string) *entities.User {
		u, err := repo.Users.FindOne(ctx, func(u entities.User) bool { return u.EmployeeCode == code })
		require.NoError(t, err)
		return &u
	}

	assert.True(t, authz.IsDevTeam(find("DEV596")))
	assert.True(t, authz.IsDevTeam(find("DEV947")))
	assert.True(t, authz.IsMechanicalElectricalManager(find("QD001")))
	assert.False(t, authz.IsMechanicalElectricalManager(find("QD002")))
	assert.True(t, authz.IsProductionDeputyDirector(find("PGD001")))
	assert.False(t, authz.IsProductionDeputyDirector(find("PGD002")))
}
