package seed

import (
	"context"
	"errors"

	"github.com/parkslookup/parks-api/internal/identity"
	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/db"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"gorm.io/gorm"
)

// Loader populates an empty database with the demo dataset and, when
// configured, a bootstrap account.
type Loader struct {
	client  *db.Client
	gateway *identity.Gateway
	cfg     config.SeedConfig
}

// Summary reports what a seed run inserted.
type Summary struct {
	Parks          int  `json:"parks"`
	VisitorCenters int  `json:"visitor_centers"`
	AccountCreated bool `json:"account_created"`
}

// NewLoader builds a seed loader. The gateway is optional; without it the
// bootstrap account step is skipped.
func NewLoader(client *db.Client, gateway *identity.Gateway, cfg config.SeedConfig) (*Loader, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	return &Loader{client: client, gateway: gateway, cfg: cfg}, nil
}

// SeedIfEmpty inserts the demo parks and visitor centers, but only when both
// tables hold no rows at all. A partially seeded database is refused so the
// endpoint can never duplicate or overwrite data.
func (l *Loader) SeedIfEmpty(ctx context.Context) (Summary, error) {
	var parkCount, centerCount int64
	if err := l.client.DB().WithContext(ctx).Model(&models.Park{}).Count(&parkCount).Error; err != nil {
		return Summary{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count parks")
	}
	if err := l.client.DB().WithContext(ctx).Model(&models.VisitorCenter{}).Count(&centerCount).Error; err != nil {
		return Summary{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count visitor centers")
	}
	if parkCount > 0 || centerCount > 0 {
		return Summary{}, pkgerrors.New(pkgerrors.CodeConflict, "database is already seeded")
	}

	summary := Summary{}
	err := l.client.WithTx(ctx, func(tx *gorm.DB) error {
		parkIDs := make(map[string]uint)
		for _, park := range defaultParks() {
			if err := tx.Create(&park).Error; err != nil {
				return err
			}
			parkIDs[park.ParkCode] = park.ID
			summary.Parks++
		}
		for code, centers := range defaultVisitorCenters() {
			for _, center := range centers {
				center.ParkID = parkIDs[code]
				if err := tx.Create(&center).Error; err != nil {
					return err
				}
				summary.VisitorCenters++
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed database")
	}

	created, err := l.bootstrapAccount(ctx)
	if err != nil {
		return summary, err
	}
	summary.AccountCreated = created
	return summary, nil
}

// bootstrapAccount opens the configured admin account. It is a no-op when the
// config is incomplete or the username is already taken.
func (l *Loader) bootstrapAccount(ctx context.Context) (bool, error) {
	if l.gateway == nil || !l.cfg.Enabled() {
		return false, nil
	}
	if _, err := l.gateway.FindByName(ctx, l.cfg.AdminUserName); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup bootstrap account")
	}

	user, err := l.gateway.CreateUser(ctx, identity.CreateUserInput{
		UserName:  l.cfg.AdminUserName,
		Email:     l.cfg.AdminEmail,
		GivenName: l.cfg.AdminName,
		Password:  l.cfg.AdminPassword,
	})
	if err != nil {
		return false, err
	}
	if err := l.gateway.SetConfirmedEmployee(ctx, user, true); err != nil {
		return false, err
	}
	return true, nil
}
