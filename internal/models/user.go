package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleType is the single authorization role attached to a user.
type RoleType string

const (
	RoleUser  RoleType = "USER"
	RoleAdmin RoleType = "ADMIN"
)

// User represents a registered account. Username and email are each
// globally unique, enforced by the database.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	Role         RoleType  `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
