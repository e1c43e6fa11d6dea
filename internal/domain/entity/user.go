// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns tasks and authors comments.
// PasswordHash is the bcrypt hash of the login password; it never leaves
// the domain/persistence layers.
type User struct {
	ID           uuid.UUID // Global unique identifier for the user.
	Email        string    // Login identifier, unique across the system.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the password. Never serialized.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// PublicIdentity is the subset of User fields safe to expose to clients
// and to embed in bearer tokens.
type PublicIdentity struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// Public returns the user's public identity.
func (u *User) Public() PublicIdentity {
	return PublicIdentity{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
