package visitorcenters

import (
	"context"
	"errors"
	"strings"

	"github.com/parkslookup/parks-api/internal/parks"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/pagination"
	"gorm.io/gorm"
)

// ServiceParams groups dependencies for the visitor centers service.
type ServiceParams struct {
	Repo     *Repository
	ParkRepo *parks.Repository
}

// Service exposes business rules for visitor center management.
type Service interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (pagination.Page[VisitorCenterView], error)
	GetByID(ctx context.Context, id uint) (VisitorCenterView, error)
	Create(ctx context.Context, input CreateVisitorCenterInput) (VisitorCenterView, error)
	Update(ctx context.Context, id uint, input UpdateVisitorCenterInput) (VisitorCenterView, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo     *Repository
	parkRepo *parks.Repository
}

// NewService builds a visitor centers service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "visitor center repo is required")
	}
	if params.ParkRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "park repo is required")
	}
	return &service{repo: params.Repo, parkRepo: params.ParkRepo}, nil
}

// List returns the filtered, sorted, paginated center views.
func (s *service) List(ctx context.Context, filter ListFilter, page pagination.Params) (pagination.Page[VisitorCenterView], error) {
	result, err := pagination.Paginate[models.VisitorCenter](s.repo.ListQuery(ctx, filter), page)
	if err != nil {
		return pagination.Page[VisitorCenterView]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list visitor centers")
	}

	views := make([]VisitorCenterView, 0, len(result.Items))
	for _, center := range result.Items {
		views = append(views, ToView(center))
	}
	return pagination.NewPage(views, result.TotalCount, page), nil
}

// GetByID loads a single center view.
func (s *service) GetByID(ctx context.Context, id uint) (VisitorCenterView, error) {
	center, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VisitorCenterView{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "visitor center not found")
		}
		return VisitorCenterView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load visitor center")
	}
	return ToView(center), nil
}

// Create inserts a new center after verifying its park exists.
func (s *service) Create(ctx context.Context, input CreateVisitorCenterInput) (VisitorCenterView, error) {
	if err := s.ensurePark(ctx, input.ParkID); err != nil {
		return VisitorCenterView{}, err
	}

	center := models.VisitorCenter{
		CenterName:      strings.TrimSpace(input.CenterName),
		Description:     input.Description,
		PhysicalAddress: input.PhysicalAddress,
		MailingAddress:  input.MailingAddress,
		PhoneNumber:     input.PhoneNumber,
		ParkID:          input.ParkID,
	}
	if err := s.repo.Create(ctx, &center); err != nil {
		return VisitorCenterView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create visitor center")
	}
	return ToView(center), nil
}

// Update applies the provided partial changes to an existing center.
func (s *service) Update(ctx context.Context, id uint, input UpdateVisitorCenterInput) (VisitorCenterView, error) {
	center, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VisitorCenterView{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "visitor center not found")
		}
		return VisitorCenterView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load visitor center")
	}

	if input.ParkID != nil {
		if err := s.ensurePark(ctx, *input.ParkID); err != nil {
			return VisitorCenterView{}, err
		}
		center.ParkID = *input.ParkID
	}
	if input.CenterName != nil {
		center.CenterName = strings.TrimSpace(*input.CenterName)
	}
	if input.Description != nil {
		center.Description = *input.Description
	}
	if input.PhysicalAddress != nil {
		center.PhysicalAddress = *input.PhysicalAddress
	}
	if input.MailingAddress != nil {
		center.MailingAddress = *input.MailingAddress
	}
	if input.PhoneNumber != nil {
		center.PhoneNumber = *input.PhoneNumber
	}

	if err := s.repo.Save(ctx, &center); err != nil {
		return VisitorCenterView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update visitor center")
	}
	return ToView(center), nil
}

// Delete removes a center by id.
func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "visitor center not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete visitor center")
	}
	return nil
}

func (s *service) ensurePark(ctx context.Context, parkID uint) error {
	if _, err := s.parkRepo.FindByID(ctx, parkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "park not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load park")
	}
	return nil
}
