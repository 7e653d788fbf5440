// Package domain defines the core client domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a registered client of the backend.
// Password always holds the argon2id hash, never the plain value.
type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	CPF       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientCreationInput is the projection of a signup body handed to the client creator.
// The address is not part of it.
type ClientCreationInput struct {
	Name     string
	Email    string
	Password string
	CPF      string
}
