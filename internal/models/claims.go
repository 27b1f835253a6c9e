package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims issued by the treasury backend.
type UserClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
