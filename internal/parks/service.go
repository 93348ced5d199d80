package parks

import (
	"context"
	"errors"
	"strings"

	"github.com/parkslookup/parks-api/pkg/db"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/pagination"
	"gorm.io/gorm"
)

// ServiceParams groups dependencies for the parks service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes business rules for park management.
type Service interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (pagination.Page[ParkView], error)
	GetByCode(ctx context.Context, code string) (ParkView, error)
	Create(ctx context.Context, input CreateParkInput) (ParkView, error)
	Update(ctx context.Context, id uint, input UpdateParkInput) (ParkView, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo *Repository
}

// NewService builds a parks service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "parks repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// List returns the filtered, sorted, paginated park views.
func (s *service) List(ctx context.Context, filter ListFilter, page pagination.Params) (pagination.Page[ParkView], error) {
	result, err := pagination.Paginate[models.Park](s.repo.ListQuery(ctx, filter), page)
	if err != nil {
		return pagination.Page[ParkView]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list parks")
	}

	views := make([]ParkView, 0, len(result.Items))
	for _, park := range result.Items {
		views = append(views, ToView(park))
	}
	return pagination.NewPage(views, result.TotalCount, page), nil
}

// GetByCode loads a single park view by code.
func (s *service) GetByCode(ctx context.Context, code string) (ParkView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ParkView{}, pkgerrors.New(pkgerrors.CodeValidation, "park code is required")
	}
	park, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ParkView{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "park not found")
		}
		return ParkView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load park")
	}
	return ToView(park), nil
}

// Create inserts a new park. Codes are stored lowercased so saved-park links
// and lookups match regardless of the case the client sent.
func (s *service) Create(ctx context.Context, input CreateParkInput) (ParkView, error) {
	park := models.Park{
		ParkCode:    strings.ToLower(strings.TrimSpace(input.ParkCode)),
		ParkName:    strings.TrimSpace(input.ParkName),
		Description: input.Description,
		StateCode:   strings.ToUpper(strings.TrimSpace(input.StateCode)),
		IsStatePark: input.IsStatePark,
	}

	if err := s.repo.Create(ctx, &park); err != nil {
		if db.IsUniqueViolation(err, "") {
			return ParkView{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "park code already exists").
				WithDetails(map[string]string{"park_code": "a park with this code already exists"})
		}
		return ParkView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create park")
	}
	return ToView(park), nil
}

// Update applies the provided partial changes to an existing park.
func (s *service) Update(ctx context.Context, id uint, input UpdateParkInput) (ParkView, error) {
	park, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ParkView{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "park not found")
		}
		return ParkView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load park")
	}

	if input.ParkName != nil {
		park.ParkName = strings.TrimSpace(*input.ParkName)
	}
	if input.Description != nil {
		park.Description = *input.Description
	}
	if input.StateCode != nil {
		park.StateCode = strings.ToUpper(strings.TrimSpace(*input.StateCode))
	}
	if input.IsStatePark != nil {
		park.IsStatePark = *input.IsStatePark
	}

	if err := s.repo.Save(ctx, &park); err != nil {
		return ParkView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update park")
	}
	return ToView(park), nil
}

// Delete removes a park by id.
func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "park not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete park")
	}
	return nil
}
