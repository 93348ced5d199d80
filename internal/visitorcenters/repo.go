package visitorcenters

import (
	"context"
	"strings"

	"github.com/parkslookup/parks-api/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates visitor center persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a visitor center repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListQuery composes the filtered, sorted center query without materializing it.
func (r *Repository) ListQuery(ctx context.Context, filter ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.VisitorCenter{})

	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(center_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if filter.ParkID > 0 {
		query = query.Where("park_id = ?", filter.ParkID)
	}

	order := "center_name ASC"
	if strings.EqualFold(strings.TrimSpace(filter.SortOrder), "desc") {
		order = "center_name DESC"
	}
	return query.Order(order)
}

// FindByID loads a visitor center by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (models.VisitorCenter, error) {
	var center models.VisitorCenter
	err := r.db.WithContext(ctx).First(&center, id).Error
	return center, err
}

// Create inserts a visitor center record.
func (r *Repository) Create(ctx context.Context, center *models.VisitorCenter) error {
	return r.db.WithContext(ctx).Create(center).Error
}

// Save writes the full visitor center record back.
func (r *Repository) Save(ctx context.Context, center *models.VisitorCenter) error {
	return r.db.WithContext(ctx).Save(center).Error
}

// Delete removes a visitor center by primary key. Returns
// gorm.ErrRecordNotFound when no row was deleted.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.VisitorCenter{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of visitor center rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VisitorCenter{}).Count(&count).Error
	return count, err
}
