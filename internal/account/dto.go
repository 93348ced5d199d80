package account

import "github.com/parkslookup/parks-api/pkg/db/models"

// UserView is the wire projection of an account. Password material never
// appears here.
type UserView struct {
	UserName    string `json:"user_name"`
	GivenName   string `json:"given_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	ParkID      *uint  `json:"park_id,omitempty"`
	IsEmployee  bool   `json:"is_confirmed_employee"`
}

// AuthResponse carries the bearer token issued after register/login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	UserName    string `json:"user_name" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	GivenName   string `json:"given_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
	ParkID      uint   `json:"park_id" validate:"required,gt=0"`
}

// LoginInput is the login request body. Handle may be a username or email.
type LoginInput struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateInput applies partial account changes. Username and email are
// mutually exclusive within one request.
type UpdateInput struct {
	UserName    *string `json:"user_name" validate:"omitempty,min=3,max=64"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
	GivenName   *string `json:"given_name" validate:"omitempty,min=1"`
	ParkID      *uint   `json:"park_id" validate:"omitempty,gt=0"`
	OldPassword *string `json:"old_password"`
	NewPassword *string `json:"new_password"`
}

// DirectoryFilter carries the employee directory list filters.
type DirectoryFilter struct {
	Name     string
	UserName string
	ParkID   uint
}

// ToView projects a persisted user into its wire shape.
func ToView(user *models.User) UserView {
	return UserView{
		UserName:    user.UserName,
		GivenName:   user.GivenName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		ParkID:      user.ParkID,
		IsEmployee:  user.IsConfirmedEmployee,
	}
}
