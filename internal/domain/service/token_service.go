package service

import (
	"time"

	"taskboard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a bearer token. The token
// embeds the full public identity so the authentication guard never has
// to hit the user store; a user deleted after issuance keeps a working
// token until it expires.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// Identity returns the public identity encoded in the claims.
func (c *Claims) Identity() entity.PublicIdentity {
	return entity.PublicIdentity{
		ID:    c.UserID,
		Email: c.Email,
		Name:  c.Name,
	}
}

// TokenService defines the interface for generating and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed bearer token for the given identity.
	Generate(identity entity.PublicIdentity) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns the decoded claims.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
