package seed

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/parkslookup/parks-api/internal/identity"
	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/db"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestLoader(t *testing.T, cfg config.SeedConfig) (*Loader, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Park{}, &models.VisitorCenter{}, &models.User{}, &models.UserPark{}))

	client := db.NewFromConn(conn)
	gateway, err := identity.NewGateway(client, config.PasswordConfig{
		ArgonMemoryKB:    32768,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	require.NoError(t, err)

	loader, err := NewLoader(client, gateway, cfg)
	require.NoError(t, err)
	return loader, conn
}

func TestSeedIfEmptyPopulatesDataset(t *testing.T) {
	loader, conn := newTestLoader(t, config.SeedConfig{})
	ctx := context.Background()

	summary, err := loader.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, summary.Parks)
	assert.Equal(t, 6, summary.VisitorCenters)
	assert.False(t, summary.AccountCreated)

	var park models.Park
	require.NoError(t, conn.Where("park_code = ?", "mora").First(&park).Error)
	assert.Equal(t, "WA", park.StateCode)
	assert.False(t, park.IsStatePark)

	var centers []models.VisitorCenter
	require.NoError(t, conn.Where("park_id = ?", park.ID).Find(&centers).Error)
	assert.Len(t, centers, 2)
	for _, center := range centers {
		assert.NotEmpty(t, center.Description)
	}
}

func TestSeedRefusesNonEmptyDatabase(t *testing.T) {
	loader, conn := newTestLoader(t, config.SeedConfig{})
	ctx := context.Background()

	require.NoError(t, conn.Create(&models.Park{ParkCode: "dena", ParkName: "Denali", StateCode: "AK"}).Error)

	_, err := loader.SeedIfEmpty(ctx)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestSeedRefusesWhenOnlyCentersExist(t *testing.T) {
	loader, conn := newTestLoader(t, config.SeedConfig{})
	ctx := context.Background()

	require.NoError(t, conn.Create(&models.VisitorCenter{CenterName: "Orphan Center", PhysicalAddress: "Nowhere", PhoneNumber: "555-123-4567", ParkID: 1}).Error)

	_, err := loader.SeedIfEmpty(ctx)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestSeedCreatesBootstrapAccount(t *testing.T) {
	loader, conn := newTestLoader(t, config.SeedConfig{
		AdminUserName: "ranger",
		AdminEmail:    "ranger@example.com",
		AdminPassword: "Gl@cier2024",
		AdminName:     "Park Ranger",
	})
	ctx := context.Background()

	summary, err := loader.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, summary.AccountCreated)

	var user models.User
	require.NoError(t, conn.Where("normalized_user_name = ?", "ranger").First(&user).Error)
	assert.True(t, user.IsConfirmedEmployee)
	assert.NotEmpty(t, user.PasswordHash)
}
