package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by the auth provider's JWTs.
// The subject is the user ID; email and role ride along for logging.
type CustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
