package identity

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/db"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    32768,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestGateway(t *testing.T) (*Gateway, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}, &models.UserPark{}))

	gateway, err := NewGateway(db.NewFromConn(conn), testPasswordConfig())
	require.NoError(t, err)
	return gateway, conn
}

func validInput() CreateUserInput {
	return CreateUserInput{
		UserName:    "Alice",
		Email:       "Alice@Example.com",
		PhoneNumber: "360-569-6571",
		GivenName:   "Alice Park",
		Password:    "Aa1!aaaa",
	}
}

func TestCreateUserHappyPath(t *testing.T) {
	gateway, _ := newTestGateway(t)
	ctx := context.Background()

	user, err := gateway.CreateUser(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.UserName)
	assert.Equal(t, "alice", user.NormalizedUserName)
	assert.Equal(t, "alice@example.com", user.NormalizedEmail)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Aa1!aaaa", user.PasswordHash)

	ok, err := gateway.CheckPassword(user, "Aa1!aaaa")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gateway.CheckPassword(user, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateUserPolicyViolationsAggregate(t *testing.T) {
	gateway, conn := newTestGateway(t)
	ctx := context.Background()

	input := validInput()
	input.Password = "short"
	_, err := gateway.CreateUser(ctx, input)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string][]string)
	require.True(t, ok)
	// short, no upper, no digit, no special
	assert.Len(t, details["password"], 4)

	var count int64
	require.NoError(t, conn.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "no account row on policy failure")
}

func TestCreateUserCaseInsensitiveUniqueness(t *testing.T) {
	gateway, conn := newTestGateway(t)
	ctx := context.Background()

	_, err := gateway.CreateUser(ctx, validInput())
	require.NoError(t, err)

	dupName := validInput()
	dupName.Email = "other@example.com"
	dupName.UserName = "ALICE"
	_, err = gateway.CreateUser(ctx, dupName)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	dupEmail := validInput()
	dupEmail.UserName = "bob"
	dupEmail.Email = "ALICE@EXAMPLE.COM"
	_, err = gateway.CreateUser(ctx, dupEmail)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	var count int64
	require.NoError(t, conn.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFindByNameAndEmailNormalized(t *testing.T) {
	gateway, _ := newTestGateway(t)
	ctx := context.Background()

	created, err := gateway.CreateUser(ctx, validInput())
	require.NoError(t, err)

	byName, err := gateway.FindByName(ctx, "  aLiCe ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := gateway.FindByEmail(ctx, "ALICE@example.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = gateway.FindByName(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestChangePassword(t *testing.T) {
	gateway, _ := newTestGateway(t)
	ctx := context.Background()

	user, err := gateway.CreateUser(ctx, validInput())
	require.NoError(t, err)

	err = gateway.ChangePassword(ctx, user, "wrong-old", "Bb2@bbbb")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	err = gateway.ChangePassword(ctx, user, "Aa1!aaaa", "weak")
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	require.NoError(t, gateway.ChangePassword(ctx, user, "Aa1!aaaa", "Bb2@bbbb"))

	ok, err := gateway.CheckPassword(user, "Bb2@bbbb")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteUserCascadesSavedParks(t *testing.T) {
	gateway, conn := newTestGateway(t)
	ctx := context.Background()

	user, err := gateway.CreateUser(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, conn.Create(&models.UserPark{UserID: user.ID, ParkCode: "dena"}).Error)
	require.NoError(t, conn.Create(&models.UserPark{UserID: user.ID, ParkCode: "mora"}).Error)

	require.NoError(t, gateway.DeleteUser(ctx, user.ID))

	var links int64
	require.NoError(t, conn.Model(&models.UserPark{}).Where("user_id = ?", user.ID).Count(&links).Error)
	assert.Zero(t, links)

	err = gateway.DeleteUser(ctx, user.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDirectoryQuery(t *testing.T) {
	gateway, conn := newTestGateway(t)
	ctx := context.Background()

	parkID := uint(7)
	rows := []models.User{
		{UserName: "ranger.rick", NormalizedUserName: "ranger.rick", Email: "r@x.com", NormalizedEmail: "r@x.com", GivenName: "Rick Ranger", PasswordHash: "h", ParkID: &parkID, IsConfirmedEmployee: true},
		{UserName: "ranger.jane", NormalizedUserName: "ranger.jane", Email: "j@x.com", NormalizedEmail: "j@x.com", GivenName: "Jane Doe", PasswordHash: "h", IsConfirmedEmployee: true},
		{UserName: "visitor", NormalizedUserName: "visitor", Email: "v@x.com", NormalizedEmail: "v@x.com", GivenName: "Vis Itor", PasswordHash: "h", IsConfirmedEmployee: false},
	}
	for i := range rows {
		require.NoError(t, conn.Create(&rows[i]).Error)
	}

	var all []models.User
	require.NoError(t, gateway.DirectoryQuery(ctx, "", "", 0).Find(&all).Error)
	assert.Len(t, all, 2, "unconfirmed accounts never appear")

	var byName []models.User
	require.NoError(t, gateway.DirectoryQuery(ctx, "jane", "", 0).Find(&byName).Error)
	require.Len(t, byName, 1)
	assert.Equal(t, "ranger.jane", byName[0].UserName)

	var byPark []models.User
	require.NoError(t, gateway.DirectoryQuery(ctx, "", "", parkID).Find(&byPark).Error)
	require.Len(t, byPark, 1)
	assert.Equal(t, "ranger.rick", byPark[0].UserName)

	var byHandle []models.User
	require.NoError(t, gateway.DirectoryQuery(ctx, "", "RANGER", 0).Find(&byHandle).Error)
	assert.Len(t, byHandle, 2)
}

func TestSetConfirmedEmployee(t *testing.T) {
	gateway, _ := newTestGateway(t)
	ctx := context.Background()

	user, err := gateway.CreateUser(ctx, validInput())
	require.NoError(t, err)
	assert.False(t, user.IsConfirmedEmployee)

	require.NoError(t, gateway.SetConfirmedEmployee(ctx, user, true))
	assert.True(t, user.IsConfirmedEmployee)

	reloaded, err := gateway.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsConfirmedEmployee)
}
