package parks

import (
	"context"
	"strings"

	"github.com/parkslookup/parks-api/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates park persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a park repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListQuery composes the filtered, sorted park query without materializing it.
// Filtering and ordering stay on the database side so pagination can push
// OFFSET/LIMIT down.
func (r *Repository) ListQuery(ctx context.Context, filter ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Park{})

	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(park_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if state := strings.TrimSpace(filter.StateCode); state != "" {
		query = query.Where("UPPER(state_code) LIKE ?", "%"+strings.ToUpper(state)+"%")
	}
	switch strings.ToLower(strings.TrimSpace(filter.Type)) {
	case TypeState:
		query = query.Where("is_state_park = ?", true)
	case TypeNational:
		query = query.Where("is_state_park = ?", false)
	}

	order := "park_name ASC"
	if strings.EqualFold(strings.TrimSpace(filter.SortOrder), "desc") {
		order = "park_name DESC"
	}
	return query.Order(order)
}

// FindByCode loads a park by its unique code. Codes match case-insensitively
// so rows predating lowercase normalization stay reachable.
func (r *Repository) FindByCode(ctx context.Context, code string) (models.Park, error) {
	var park models.Park
	err := r.db.WithContext(ctx).Where("LOWER(park_code) = ?", strings.ToLower(code)).First(&park).Error
	return park, err
}

// FindByID loads a park by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (models.Park, error) {
	var park models.Park
	err := r.db.WithContext(ctx).First(&park, id).Error
	return park, err
}

// CodesExisting returns the subset of the provided codes present in parks,
// lowercased. Callers pass lowercased codes; the comparison tolerates rows
// stored in any case.
func (r *Repository) CodesExisting(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var existing []string
	err := r.db.WithContext(ctx).
		Model(&models.Park{}).
		Where("LOWER(park_code) IN ?", codes).
		Pluck("LOWER(park_code)", &existing).
		Error
	return existing, err
}

// Create inserts a park record.
func (r *Repository) Create(ctx context.Context, park *models.Park) error {
	return r.db.WithContext(ctx).Create(park).Error
}

// Save writes the full park record back.
func (r *Repository) Save(ctx context.Context, park *models.Park) error {
	return r.db.WithContext(ctx).Save(park).Error
}

// Delete removes a park by primary key. Returns gorm.ErrRecordNotFound when
// no row was deleted.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Park{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of park rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Park{}).Count(&count).Error
	return count, err
}
