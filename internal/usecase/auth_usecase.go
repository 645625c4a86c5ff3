// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"sweetshop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Mobile   string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token and the role of its owner.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	Role        entity.Role
	ExpiresIn   time.Duration
}

// AuthUsecase defines the identity operations: account creation, credential
// exchange and the two-stage authenticate/authorize gate.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
	// RequireAdmin passes the user through when it holds the admin role.
	RequireAdmin(user *entity.User) (*entity.User, error)
}
