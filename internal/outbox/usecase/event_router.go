package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/clients/internal/outbox/domain"
)

// EventRouter dispatches events to the processor registered for their type.
// Events without a processor are acknowledged with a warning.
type EventRouter struct {
	processors map[string]EventProcessor
	logger     *slog.Logger
}

// NewEventRouter creates an empty EventRouter.
func NewEventRouter(logger *slog.Logger) *EventRouter {
	return &EventRouter{
		processors: make(map[string]EventProcessor),
		logger:     logger,
	}
}

// Register sets the processor for eventType, replacing any previous one.
func (r *EventRouter) Register(eventType string, processor EventProcessor) *EventRouter {
	r.processors[eventType] = processor
	return r
}

// Process implements EventProcessor.
func (r *EventRouter) Process(ctx context.Context, event *domain.OutboxEvent) error {
	processor, ok := r.processors[event.EventType]
	if !ok {
		if r.logger != nil {
			r.logger.Warn("unknown event type",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.EventType),
			)
		}
		return nil
	}
	return processor.Process(ctx, event)
}
