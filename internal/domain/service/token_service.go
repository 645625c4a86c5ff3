package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the access token.
// The subject carries the decimal user ID.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed, time-limited token for the given user.
	GenerateAccessToken(userID uint) (string, error)

	// ValidateToken checks signature, algorithm and expiry and returns the user ID it was issued for.
	ValidateToken(tokenString string) (uint, error)

	// AccessTokenTTL returns the validity window of issued tokens.
	AccessTokenTTL() time.Duration
}
