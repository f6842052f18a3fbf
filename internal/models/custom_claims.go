package models

import "github.com/golang-jwt/jwt/v5"

const (
	// RoleAdmin is the only role allowed into the console
	RoleAdmin = "admin"

	TokenTypeAccess = "access"
)

// AdminClaims represents the JWT claims carried by console operators
type AdminClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
}

// IsAdmin reports whether the token grants console access
func (c *AdminClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
