package userparks

import (
	"context"
	"strings"

	"github.com/parkslookup/parks-api/internal/parks"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/pagination"
)

// ServiceParams groups dependencies for the saved-parks service.
type ServiceParams struct {
	Repo     *Repository
	ParkRepo *parks.Repository
}

// Service exposes the per-user saved-park list operations.
type Service interface {
	AddParks(ctx context.Context, userID uint, codes []string) ([]string, error)
	RemoveParks(ctx context.Context, userID uint, codes []string) ([]string, error)
	ListParks(ctx context.Context, userID uint, filter parks.ListFilter, page pagination.Params) (pagination.Page[parks.ParkView], error)
}

type service struct {
	repo     *Repository
	parkRepo *parks.Repository
}

// NewService builds a saved-parks service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "saved-parks repo is required")
	}
	if params.ParkRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "park repo is required")
	}
	return &service{repo: params.Repo, parkRepo: params.ParkRepo}, nil
}

// AddParks saves every valid, not-yet-saved code in one batch insert. Every
// unknown code is collected before failing; already-saved codes are skipped.
// An empty remainder is a conflict, not a silent no-op.
func (s *service) AddParks(ctx context.Context, userID uint, codes []string) ([]string, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	requested, err := s.resolveCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	saved, err := s.savedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	toAdd := make([]string, 0, len(requested))
	for _, code := range requested {
		if !saved[code] {
			toAdd = append(toAdd, code)
		}
	}
	if len(toAdd) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "all requested parks are already saved")
	}

	if err := s.repo.AddBatch(ctx, userID, toAdd); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save parks")
	}
	return toAdd, nil
}

// RemoveParks drops every valid, currently-saved code in one batch delete.
func (s *service) RemoveParks(ctx context.Context, userID uint, codes []string) ([]string, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	requested, err := s.resolveCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	saved, err := s.savedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	toRemove := make([]string, 0, len(requested))
	for _, code := range requested {
		if saved[code] {
			toRemove = append(toRemove, code)
		}
	}
	if len(toRemove) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "none of the requested parks are saved")
	}

	if err := s.repo.RemoveBatch(ctx, userID, toRemove); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove saved parks")
	}
	return toRemove, nil
}

// ListParks returns the user's saved parks under the standard park list contract.
func (s *service) ListParks(ctx context.Context, userID uint, filter parks.ListFilter, page pagination.Params) (pagination.Page[parks.ParkView], error) {
	result, err := pagination.Paginate[models.Park](s.repo.ListQuery(ctx, userID, filter), page)
	if err != nil {
		return pagination.Page[parks.ParkView]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list saved parks")
	}

	views := make([]parks.ParkView, 0, len(result.Items))
	for _, park := range result.Items {
		views = append(views, parks.ToView(park))
	}
	return pagination.NewPage(views, result.TotalCount, page), nil
}

// resolveCodes dedupes the input and verifies every code against parks,
// collecting ALL unknown codes into a single not-found error.
func (s *service) resolveCodes(ctx context.Context, codes []string) ([]string, error) {
	deduped := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		deduped = append(deduped, code)
	}
	if len(deduped) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one park code is required")
	}

	existing, err := s.parkRepo.CodesExisting(ctx, deduped)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "verify park codes")
	}
	known := make(map[string]bool, len(existing))
	for _, code := range existing {
		known[code] = true
	}

	invalid := make([]string, 0)
	for _, code := range deduped {
		if !known[code] {
			invalid = append(invalid, code)
		}
	}
	if len(invalid) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown park codes").
			WithDetails(map[string][]string{"parks": invalid})
	}
	return deduped, nil
}

// ensureUser guards mutations against tokens whose account was deleted after
// issuance; without it the batch insert would surface an FK violation.
func (s *service) ensureUser(ctx context.Context, userID uint) error {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists")
	}
	return nil
}

func (s *service) savedSet(ctx context.Context, userID uint) (map[string]bool, error) {
	codes, err := s.repo.SavedCodes(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load saved parks")
	}
	saved := make(map[string]bool, len(codes))
	for _, code := range codes {
		saved[code] = true
	}
	return saved, nil
}
