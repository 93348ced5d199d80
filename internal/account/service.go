package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/parkslookup/parks-api/internal/identity"
	"github.com/parkslookup/parks-api/internal/parks"
	"github.com/parkslookup/parks-api/pkg/auth"
	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/pagination"
	"gorm.io/gorm"
)

// loginFailedMessage is deliberately the same for an unknown handle and a
// wrong password so the endpoint cannot be used to probe for accounts.
const loginFailedMessage = "there is something wrong with your login or password"

// ServiceParams groups dependencies for the account service.
type ServiceParams struct {
	Gateway  *identity.Gateway
	ParkRepo *parks.Repository
	JWT      config.JWTConfig
}

// Service exposes account lifecycle and authentication operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (AuthResponse, error)
	Login(ctx context.Context, input LoginInput) (AuthResponse, error)
	Profile(ctx context.Context, callerID uint, userName string) (UserView, error)
	Update(ctx context.Context, callerID uint, userName string, input UpdateInput) (UserView, error)
	Delete(ctx context.Context, callerID uint, userName string) error
	EmployeeDirectory(ctx context.Context, callerID uint, filter DirectoryFilter, page pagination.Params) (pagination.Page[UserView], error)
	ConfirmEmployee(ctx context.Context, callerID uint, userName string, confirmed bool) (UserView, error)
}

type service struct {
	gateway  *identity.Gateway
	parkRepo *parks.Repository
	jwt      config.JWTConfig
}

// NewService builds an account service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Gateway == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "identity gateway is required")
	}
	if params.ParkRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "parks repo is required")
	}
	if params.JWT.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "jwt secret is required")
	}
	return &service{gateway: params.Gateway, parkRepo: params.ParkRepo, jwt: params.JWT}, nil
}

// Register opens an account tied to an existing park and signs the caller in.
func (s *service) Register(ctx context.Context, input RegisterInput) (AuthResponse, error) {
	if _, err := s.parkRepo.FindByID(ctx, input.ParkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, pkgerrors.New(pkgerrors.CodeNotFound, "park not found").
				WithDetails(map[string]string{"park_id": "no park with this id exists"})
		}
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load park")
	}

	parkID := input.ParkID
	user, err := s.gateway.CreateUser(ctx, identity.CreateUserInput{
		UserName:    input.UserName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		GivenName:   input.GivenName,
		Password:    input.Password,
		ParkID:      &parkID,
	})
	if err != nil {
		return AuthResponse{}, err
	}
	return s.issue(user)
}

// Login resolves the handle as an email first, then as a username, and checks
// the password. Every failure path returns the same generic validation error.
func (s *service) Login(ctx context.Context, input LoginInput) (AuthResponse, error) {
	user, err := s.gateway.FindByEmail(ctx, input.Handle)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.gateway.FindByName(ctx, input.Handle)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, pkgerrors.New(pkgerrors.CodeValidation, loginFailedMessage)
		}
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup account")
	}

	valid, err := s.gateway.CheckPassword(user, input.Password)
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return AuthResponse{}, pkgerrors.New(pkgerrors.CodeValidation, loginFailedMessage)
	}
	return s.issue(user)
}

// Profile returns an account view. Callers may read their own profile;
// confirmed employees may additionally read accounts attached to their park.
func (s *service) Profile(ctx context.Context, callerID uint, userName string) (UserView, error) {
	caller, err := s.loadCaller(ctx, callerID)
	if err != nil {
		return UserView{}, err
	}

	if identity.Normalize(userName) == caller.NormalizedUserName {
		return ToView(caller), nil
	}
	// Reject non-employees before the lookup so the endpoint cannot be used
	// to probe for usernames.
	if !caller.IsConfirmedEmployee {
		return UserView{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "cannot view another user's account")
	}

	target, err := s.loadTarget(ctx, userName)
	if err != nil {
		return UserView{}, err
	}
	if !samePark(caller, target) {
		return UserView{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "cannot view another user's account")
	}
	return ToView(target), nil
}

// Update applies partial profile changes to the caller's own account. A single
// request may change the username or the email, never both.
func (s *service) Update(ctx context.Context, callerID uint, userName string, input UpdateInput) (UserView, error) {
	caller, err := s.loadCaller(ctx, callerID)
	if err != nil {
		return UserView{}, err
	}
	if identity.Normalize(userName) != caller.NormalizedUserName {
		return UserView{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "cannot modify another user's account")
	}

	if input.UserName != nil && input.Email != nil {
		return UserView{}, pkgerrors.New(pkgerrors.CodeConflict, "username and email cannot be changed in the same request")
	}
	if (input.OldPassword == nil) != (input.NewPassword == nil) {
		return UserView{}, pkgerrors.New(pkgerrors.CodeValidation, "changing the password requires both old_password and new_password")
	}

	if input.ParkID != nil {
		if _, err := s.parkRepo.FindByID(ctx, *input.ParkID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return UserView{}, pkgerrors.New(pkgerrors.CodeNotFound, "park not found").
					WithDetails(map[string]string{"park_id": "no park with this id exists"})
			}
			return UserView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load park")
		}
	}

	if input.OldPassword != nil && input.NewPassword != nil {
		if err := s.gateway.ChangePassword(ctx, caller, *input.OldPassword, *input.NewPassword); err != nil {
			return UserView{}, err
		}
	}

	if input.UserName != nil {
		caller.UserName = strings.TrimSpace(*input.UserName)
	}
	if input.Email != nil {
		caller.Email = strings.TrimSpace(*input.Email)
	}
	if input.PhoneNumber != nil {
		caller.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
	}
	if input.GivenName != nil {
		caller.GivenName = strings.TrimSpace(*input.GivenName)
	}
	if input.ParkID != nil {
		caller.ParkID = input.ParkID
	}

	if err := s.gateway.UpdateUser(ctx, caller); err != nil {
		return UserView{}, err
	}
	return ToView(caller), nil
}

// Delete removes the caller's own account and its saved parks.
func (s *service) Delete(ctx context.Context, callerID uint, userName string) error {
	caller, err := s.loadCaller(ctx, callerID)
	if err != nil {
		return err
	}
	if identity.Normalize(userName) != caller.NormalizedUserName {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "cannot delete another user's account")
	}
	return s.gateway.DeleteUser(ctx, caller.ID)
}

// EmployeeDirectory lists confirmed employees. Only confirmed employees may
// browse it.
func (s *service) EmployeeDirectory(ctx context.Context, callerID uint, filter DirectoryFilter, page pagination.Params) (pagination.Page[UserView], error) {
	caller, err := s.loadCaller(ctx, callerID)
	if err != nil {
		return pagination.Page[UserView]{}, err
	}
	if !caller.IsConfirmedEmployee {
		return pagination.Page[UserView]{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "employee directory is restricted to confirmed employees")
	}

	query := s.gateway.DirectoryQuery(ctx, filter.Name, filter.UserName, filter.ParkID)
	result, err := pagination.Paginate[models.User](query, page)
	if err != nil {
		return pagination.Page[UserView]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list employees")
	}

	views := make([]UserView, 0, len(result.Items))
	for _, user := range result.Items {
		views = append(views, ToView(&user))
	}
	return pagination.NewPage(views, result.TotalCount, page), nil
}

// ConfirmEmployee flips the employee confirmation flag on an account. The
// caller is reloaded rather than trusted from token claims, so an account
// demoted mid-session loses the ability immediately.
func (s *service) ConfirmEmployee(ctx context.Context, callerID uint, userName string, confirmed bool) (UserView, error) {
	caller, err := s.loadCaller(ctx, callerID)
	if err != nil {
		return UserView{}, err
	}
	if !caller.IsConfirmedEmployee {
		return UserView{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "only confirmed employees can confirm accounts")
	}

	target, err := s.loadTarget(ctx, userName)
	if err != nil {
		return UserView{}, err
	}
	if err := s.gateway.SetConfirmedEmployee(ctx, target, confirmed); err != nil {
		return UserView{}, err
	}
	return ToView(target), nil
}

func (s *service) issue(user *models.User) (AuthResponse, error) {
	token, err := auth.MintAccessToken(s.jwt, time.Now(), auth.AccessTokenPayload{
		UserID:     user.ID,
		UserName:   user.UserName,
		ParkID:     user.ParkID,
		IsEmployee: user.IsConfirmedEmployee,
	})
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	return AuthResponse{Token: token, User: ToView(user)}, nil
}

func (s *service) loadCaller(ctx context.Context, callerID uint) (*models.User, error) {
	caller, err := s.gateway.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "account no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load caller")
	}
	return caller, nil
}

func (s *service) loadTarget(ctx context.Context, userName string) (*models.User, error) {
	target, err := s.gateway.FindByName(ctx, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return target, nil
}

// Employees can only act on accounts pinned to the same park as their own.
func samePark(caller, target *models.User) bool {
	if !caller.IsConfirmedEmployee || caller.ParkID == nil || target.ParkID == nil {
		return false
	}
	return *caller.ParkID == *target.ParkID
}
