// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the minted bearer token plus the public identity fields.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the authentication operations: registration and login.
type AuthUsecase interface {
	// Register creates a new user account. The returned user carries the
	// public identity only as far as callers are concerned; the password
	// hash never reaches a response.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and mints a bearer token. Unknown email
	// and wrong password produce the same error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
