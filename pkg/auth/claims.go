package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID     uint
	UserName   string
	ParkID     *uint
	IsEmployee bool
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID     uint   `json:"user_id"`
	UserName   string `json:"user_name"`
	ParkID     *uint  `json:"park_id,omitempty"`
	IsEmployee bool   `json:"is_employee,omitempty"`
	jwt.RegisteredClaims
}
