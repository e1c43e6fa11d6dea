// Package middleware contains the HTTP middleware for the API.
package middleware

import (
	"strings"

	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo context key under which the authenticated user
// ID is stored by Authenticate.
const KeyUserID = "userID"

// KeyIdentity is the echo context key for the full token identity.
const KeyIdentity = "identity"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token from the Authorization header.
// A missing or malformed header counts as no token at all; only a token
// that fails verification is reported as invalid. Both stop the request
// with 401 before the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrMissingToken.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
		}

		// Set user info on the context for handlers to use
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyIdentity, claims.Identity())

		return next(c)
	}
}
