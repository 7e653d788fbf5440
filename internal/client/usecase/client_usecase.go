package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	clientService "github.com/allisson/clients/internal/client/service"
	"github.com/allisson/clients/internal/database"
	apperrors "github.com/allisson/clients/internal/errors"
	outboxDomain "github.com/allisson/clients/internal/outbox/domain"
	"github.com/allisson/clients/internal/validation"
)

// ClientCreatedEventType is the outbox event type emitted after a client is stored.
const ClientCreatedEventType = "client.created"

// clientUseCase implements ClientUseCase for managing clients.
type clientUseCase struct {
	txManager       database.TxManager
	clientRepo      ClientRepository
	outboxRepo      OutboxEventRepository
	passwordService clientService.PasswordService
}

// NewClientUseCase creates a new ClientUseCase.
func NewClientUseCase(
	txManager database.TxManager,
	clientRepo ClientRepository,
	outboxRepo OutboxEventRepository,
	passwordService clientService.PasswordService,
) ClientUseCase {
	return &clientUseCase{
		txManager:       txManager,
		clientRepo:      clientRepo,
		outboxRepo:      outboxRepo,
		passwordService: passwordService,
	}
}

// Create stores a new client and its client.created event in a single transaction.
func (c *clientUseCase) Create(
	ctx context.Context,
	input *clientDomain.ClientCreationInput,
) (*clientDomain.Client, error) {
	hashedPassword, err := c.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	client := &clientDomain.Client{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		Password: hashedPassword,
		CPF:      validation.OnlyDigits(input.CPF),
	}

	err = c.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := c.clientRepo.Create(ctx, client); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"client_id": client.ID,
			"name":      client.Name,
			"email":     client.Email,
		})
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal event payload")
		}

		event := &outboxDomain.OutboxEvent{
			ID:        uuid.Must(uuid.NewV7()),
			EventType: ClientCreatedEventType,
			Payload:   string(payload),
			Status:    outboxDomain.OutboxEventStatusPending,
		}
		if err := c.outboxRepo.Create(ctx, event); err != nil {
			return apperrors.Wrap(err, "failed to create outbox event")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Get retrieves a client by ID.
func (c *clientUseCase) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	return c.clientRepo.Get(ctx, clientID)
}

// List returns a page of clients, newest first.
func (c *clientUseCase) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	return c.clientRepo.List(ctx, offset, limit)
}
