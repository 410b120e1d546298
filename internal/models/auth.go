package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims represents the payload of access tokens issued by the external
// identity provider. Only the user identity is consumed here.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
