package userparks

import (
	"context"
	"strings"

	"github.com/parkslookup/parks-api/internal/parks"
	"github.com/parkslookup/parks-api/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates saved-park link persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a saved-parks repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UserExists reports whether the account row is still present.
func (r *Repository) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Count(&count).
		Error
	return count > 0, err
}

// SavedCodes returns every park code the user has saved.
func (r *Repository) SavedCodes(ctx context.Context, userID uint) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&models.UserPark{}).
		Where("user_id = ?", userID).
		Pluck("park_code", &codes).
		Error
	return codes, err
}

// AddBatch inserts all links in a single multi-row statement.
func (r *Repository) AddBatch(ctx context.Context, userID uint, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	links := make([]models.UserPark, 0, len(codes))
	for _, code := range codes {
		links = append(links, models.UserPark{UserID: userID, ParkCode: code})
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

// RemoveBatch deletes all named links in a single statement.
func (r *Repository) RemoveBatch(ctx context.Context, userID uint, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND park_code IN ?", userID, codes).
		Delete(&models.UserPark{}).
		Error
}

// ListQuery joins the user's saved links against parks with the standard park
// filter/sort contract applied.
func (r *Repository) ListQuery(ctx context.Context, userID uint, filter parks.ListFilter) *gorm.DB {
	// Links store lowercased codes; the join tolerates park rows in any case.
	query := r.db.WithContext(ctx).
		Table("parks").
		Joins("JOIN user_parks up ON up.park_code = LOWER(parks.park_code)").
		Where("up.user_id = ?", userID)

	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(parks.park_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if state := strings.TrimSpace(filter.StateCode); state != "" {
		query = query.Where("UPPER(parks.state_code) LIKE ?", "%"+strings.ToUpper(state)+"%")
	}
	switch strings.ToLower(strings.TrimSpace(filter.Type)) {
	case parks.TypeState:
		query = query.Where("parks.is_state_park = ?", true)
	case parks.TypeNational:
		query = query.Where("parks.is_state_park = ?", false)
	}

	order := "parks.park_name ASC"
	if strings.EqualFold(strings.TrimSpace(filter.SortOrder), "desc") {
		order = "parks.park_name DESC"
	}
	return query.Order(order)
}
