package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifies the operator or service calling the admin endpoints.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}
