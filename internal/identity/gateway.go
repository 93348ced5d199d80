package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/db"
	"github.com/parkslookup/parks-api/pkg/db/models"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/security"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// Gateway owns the user table and everything credential-shaped. Password
// hashes never leave this package except embedded in the model; callers must
// not serialize them.
type Gateway struct {
	client      *db.Client
	passwordCfg config.PasswordConfig
}

// NewGateway binds the identity gateway to the shared DB client.
func NewGateway(client *db.Client, passwordCfg config.PasswordConfig) (*Gateway, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	return &Gateway{client: client, passwordCfg: passwordCfg}, nil
}

// CreateUserInput carries the fields needed to open an account.
type CreateUserInput struct {
	UserName    string
	Email       string
	PhoneNumber string
	GivenName   string
	Password    string
	ParkID      *uint
}

// Normalize lowercases a handle or email for case-insensitive comparison.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// CreateUser enforces the password policy and uniqueness of the normalized
// username/email, then persists the account with an argon2id hash. Policy
// violations are aggregated and surfaced as one field-tagged validation error.
func (g *Gateway) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if err := security.ValidatePasswordPolicy(input.Password); err != nil {
		messages := make([]string, 0)
		for _, violation := range multierr.Errors(err) {
			messages = append(messages, violation.Error())
		}
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password rejected by policy").
			WithDetails(map[string][]string{"password": messages})
	}

	normalizedName := Normalize(input.UserName)
	normalizedEmail := Normalize(input.Email)

	if _, err := g.FindByName(ctx, input.UserName); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already taken").
			WithDetails(map[string]string{"user_name": "an account with this username already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup username")
	}
	if _, err := g.FindByEmail(ctx, input.Email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered").
			WithDetails(map[string]string{"email": "an account with this email already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup email")
	}

	hash, err := security.HashPassword(input.Password, g.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := models.User{
		UserName:           strings.TrimSpace(input.UserName),
		NormalizedUserName: normalizedName,
		Email:              strings.TrimSpace(input.Email),
		NormalizedEmail:    normalizedEmail,
		GivenName:          strings.TrimSpace(input.GivenName),
		PhoneNumber:        strings.TrimSpace(input.PhoneNumber),
		PasswordHash:       hash,
		ParkID:             input.ParkID,
	}

	if err := g.client.DB().WithContext(ctx).Create(&user).Error; err != nil {
		// Unique indexes are the backstop for concurrent registration.
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "username or email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return &user, nil
}

// FindByName retrieves the user matching the normalized username.
func (g *Gateway) FindByName(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := g.client.DB().WithContext(ctx).
		Where("normalized_user_name = ?", Normalize(userName)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves the user matching the normalized email.
func (g *Gateway) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := g.client.DB().WithContext(ctx).
		Where("normalized_email = ?", Normalize(email)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by primary key.
func (g *Gateway) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := g.client.DB().WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckPassword verifies the password against the stored hash.
func (g *Gateway) CheckPassword(user *models.User, password string) (bool, error) {
	return security.VerifyPassword(password, user.PasswordHash)
}

// ChangePassword verifies the old password, applies the policy to the new
// one, and rehashes. Both steps happen before any write.
func (g *Gateway) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	valid, err := security.VerifyPassword(oldPassword, user.PasswordHash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return pkgerrors.New(pkgerrors.CodeValidation, "current password is incorrect").
			WithDetails(map[string]string{"old_password": "current password is incorrect"})
	}

	if err := security.ValidatePasswordPolicy(newPassword); err != nil {
		messages := make([]string, 0)
		for _, violation := range multierr.Errors(err) {
			messages = append(messages, violation.Error())
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "password rejected by policy").
			WithDetails(map[string][]string{"new_password": messages})
	}

	hash, err := security.HashPassword(newPassword, g.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	if err := g.client.DB().WithContext(ctx).
		Model(user).
		UpdateColumn("password_hash", hash).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store password hash")
	}
	user.PasswordHash = hash
	return nil
}

// UpdateUser persists profile changes. Normalized columns are recomputed from
// the current values before the write.
func (g *Gateway) UpdateUser(ctx context.Context, user *models.User) error {
	user.NormalizedUserName = Normalize(user.UserName)
	user.NormalizedEmail = Normalize(user.Email)

	if err := g.client.DB().WithContext(ctx).Save(user).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "username or email already registered")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	return nil
}

// DeleteUser removes the account and its saved-park links in one transaction.
func (g *Gateway) DeleteUser(ctx context.Context, userID uint) error {
	err := g.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserPark{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.User{}, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	return nil
}

// SetConfirmedEmployee flips the employee confirmation flag.
func (g *Gateway) SetConfirmedEmployee(ctx context.Context, user *models.User, confirmed bool) error {
	if err := g.client.DB().WithContext(ctx).
		Model(user).
		UpdateColumn("is_confirmed_employee", confirmed).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update employee flag")
	}
	user.IsConfirmedEmployee = confirmed
	return nil
}

// DirectoryQuery composes the confirmed-employee directory listing. Filters
// are substring matches on given name and username plus an exact park id.
func (g *Gateway) DirectoryQuery(ctx context.Context, name, userName string, parkID uint) *gorm.DB {
	query := g.client.DB().WithContext(ctx).
		Model(&models.User{}).
		Where("is_confirmed_employee = ?", true)

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		query = query.Where("LOWER(given_name) LIKE ?", "%"+strings.ToLower(trimmed)+"%")
	}
	if trimmed := strings.TrimSpace(userName); trimmed != "" {
		query = query.Where("normalized_user_name LIKE ?", "%"+Normalize(trimmed)+"%")
	}
	if parkID > 0 {
		query = query.Where("park_id = ?", parkID)
	}
	return query.Order("normalized_user_name ASC")
}
