package visitorcenters

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/parkslookup/parks-api/internal/parks"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, *gorm.DB, models.Park) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Park{}, &models.VisitorCenter{}))

	park := models.Park{ParkCode: "mora", ParkName: "Mount Rainier", StateCode: "WA"}
	require.NoError(t, conn.Create(&park).Error)

	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(conn),
		ParkRepo: parks.NewRepository(conn),
	})
	require.NoError(t, err)
	return svc, conn, park
}

func TestCreateRequiresExistingPark(t *testing.T) {
	svc, _, park := newTestService(t)
	ctx := context.Background()

	view, err := svc.Create(ctx, CreateVisitorCenterInput{
		CenterName:      "Paradise Jackson Visitor Center",
		Description:     "Exhibits on glaciers and subalpine meadows",
		PhysicalAddress: "Paradise, WA",
		PhoneNumber:     "360-569-6571",
		ParkID:          park.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, park.ID, view.ParkID)
	assert.Equal(t, "Exhibits on glaciers and subalpine meadows", view.Description)

	_, err = svc.Create(ctx, CreateVisitorCenterInput{
		CenterName:      "Ghost Center",
		PhysicalAddress: "Nowhere",
		PhoneNumber:     "360-569-6571",
		ParkID:          9999,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListFilters(t *testing.T) {
	svc, conn, park := newTestService(t)
	other := models.Park{ParkCode: "dena", ParkName: "Denali", StateCode: "AK"}
	require.NoError(t, conn.Create(&other).Error)

	centers := []models.VisitorCenter{
		{CenterName: "Paradise Jackson", PhysicalAddress: "Paradise, WA", PhoneNumber: "360-569-6571", ParkID: park.ID},
		{CenterName: "Sunrise", PhysicalAddress: "Sunrise, WA", PhoneNumber: "360-663-2425", ParkID: park.ID},
		{CenterName: "Eielson", PhysicalAddress: "Mile 66 Park Road", PhoneNumber: "907-683-9532", ParkID: other.ID},
	}
	for i := range centers {
		require.NoError(t, conn.Create(&centers[i]).Error)
	}
	ctx := context.Background()

	t.Run("name substring", func(t *testing.T) {
		page, err := svc.List(ctx, ListFilter{Name: "sun"}, pagination.Params{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Sunrise", page.Items[0].CenterName)
	})

	t.Run("park filter", func(t *testing.T) {
		page, err := svc.List(ctx, ListFilter{ParkID: park.ID}, pagination.Params{})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
	})

	t.Run("sort descending", func(t *testing.T) {
		page, err := svc.List(ctx, ListFilter{SortOrder: "desc"}, pagination.Params{})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "Sunrise", page.Items[0].CenterName)
		assert.Equal(t, "Eielson", page.Items[2].CenterName)
	})
}

func TestGetUpdateDelete(t *testing.T) {
	svc, conn, park := newTestService(t)
	center := models.VisitorCenter{CenterName: "Sunrise", PhysicalAddress: "Sunrise, WA", PhoneNumber: "360-663-2425", ParkID: park.ID}
	require.NoError(t, conn.Create(&center).Error)
	ctx := context.Background()

	view, err := svc.GetByID(ctx, center.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", view.CenterName)

	_, err = svc.GetByID(ctx, 9999)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	newPhone := "360-663-0000"
	description := "Seasonal center at the end of Sunrise Park Road"
	view, err = svc.Update(ctx, center.ID, UpdateVisitorCenterInput{PhoneNumber: &newPhone, Description: &description})
	require.NoError(t, err)
	assert.Equal(t, newPhone, view.PhoneNumber)
	assert.Equal(t, description, view.Description)
	assert.Equal(t, "Sunrise", view.CenterName)

	badPark := uint(9999)
	_, err = svc.Update(ctx, center.ID, UpdateVisitorCenterInput{ParkID: &badPark})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	require.NoError(t, svc.Delete(ctx, center.ID))
	err = svc.Delete(ctx, center.ID)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
