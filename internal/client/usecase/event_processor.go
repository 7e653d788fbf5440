package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/allisson/clients/internal/errors"
	outboxDomain "github.com/allisson/clients/internal/outbox/domain"
)

// ClientCreatedPayload is the payload of a client.created outbox event.
type ClientCreatedPayload struct {
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
}

// ClientCreatedProcessor delivers client.created events by logging them.
type ClientCreatedProcessor struct {
	logger *slog.Logger
}

// NewClientCreatedProcessor creates a ClientCreatedProcessor.
func NewClientCreatedProcessor(logger *slog.Logger) *ClientCreatedProcessor {
	return &ClientCreatedProcessor{logger: logger}
}

// Process decodes the payload and logs the new client.
func (p *ClientCreatedProcessor) Process(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	var payload ClientCreatedPayload
	if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
		return apperrors.Wrap(err, "failed to decode client.created payload")
	}
	if payload.ClientID == uuid.Nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "client.created payload without client_id")
	}

	if p.logger != nil {
		p.logger.InfoContext(ctx, "client created",
			slog.String("event_id", event.ID.String()),
			slog.String("client_id", payload.ClientID.String()),
			slog.String("email", payload.Email),
		)
	}
	return nil
}
