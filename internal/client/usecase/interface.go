// Package usecase implements the client signup pipeline and the client business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	outboxDomain "github.com/allisson/clients/internal/outbox/domain"
)

// Validator checks the format of signup fields. Implementations must be pure.
type Validator interface {
	IsEmail(email string) bool
	IsCPF(cpf string) bool
	IsZipCode(zipCode string) bool
}

// ClientCreator creates a client record from a validated signup.
type ClientCreator interface {
	Create(ctx context.Context, input *clientDomain.ClientCreationInput) (*clientDomain.Client, error)
}

// ClientRepository defines persistence operations for clients.
// Implementations must support transaction-aware operations via context propagation.
type ClientRepository interface {
	// Create stores a new client. Returns ErrClientAlreadyExists on a duplicate email or CPF.
	Create(ctx context.Context, client *clientDomain.Client) error

	// Get retrieves a client by ID. Returns ErrClientNotFound if not found.
	Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error)

	// List returns clients ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error)
}

// OutboxEventRepository stores events published alongside client changes.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// SignupUseCase turns a raw signup request into a response envelope.
// It never returns an error: every failure is reported in the envelope.
type SignupUseCase interface {
	Handle(ctx context.Context, request *clientDomain.SignupRequest) *clientDomain.SignupResponse
}

// ClientUseCase defines business logic operations for managing clients.
type ClientUseCase interface {
	ClientCreator

	// Get retrieves a client by ID. Returns ErrClientNotFound if not found.
	Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error)

	// List returns a page of clients, newest first.
	List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error)
}
