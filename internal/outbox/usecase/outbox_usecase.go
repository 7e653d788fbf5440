// Package usecase implements the outbox worker that delivers pending events.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/allisson/clients/internal/database"
	"github.com/allisson/clients/internal/metrics"
	"github.com/allisson/clients/internal/outbox/domain"
)

// Config holds outbox worker configuration.
type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// OutboxEventRepository defines outbox event repository operations.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
}

// EventProcessor delivers a single outbox event.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

// UseCase defines the outbox worker operations.
type UseCase interface {
	Start(ctx context.Context) error
	ProcessEvents(ctx context.Context) error
}

// OutboxUseCase polls pending events and hands them to an EventProcessor.
type OutboxUseCase struct {
	config         Config
	txManager      database.TxManager
	outboxRepo     OutboxEventRepository
	eventProcessor EventProcessor
	metrics        metrics.BusinessMetrics
	logger         *slog.Logger
	now            func() time.Time
}

// NewOutboxUseCase creates a new OutboxUseCase.
func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	eventProcessor EventProcessor,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *OutboxUseCase {
	if businessMetrics == nil {
		businessMetrics = metrics.NewNoOpBusinessMetrics()
	}
	return &OutboxUseCase{
		config:         config,
		txManager:      txManager,
		outboxRepo:     outboxRepo,
		eventProcessor: eventProcessor,
		metrics:        businessMetrics,
		logger:         logger,
		now:            time.Now,
	}
}

// Start runs ProcessEvents on every tick until ctx is cancelled. Batch failures
// are logged and retried on the next tick.
func (uc *OutboxUseCase) Start(ctx context.Context) error {
	uc.log().Info("starting outbox worker",
		slog.Duration("interval", uc.config.Interval),
		slog.Int("batch_size", uc.config.BatchSize),
		slog.Int("max_retries", uc.config.MaxRetries),
	)

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			uc.log().Info("stopping outbox worker")
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil {
				uc.log().Error("failed to process outbox batch", slog.Any("error", err))
			}
		}
	}
}

// ProcessEvents locks a batch of pending events and delivers them in one transaction.
// A failed delivery only updates that event; a failed update aborts the batch.
func (uc *OutboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.outboxRepo.GetPendingEvents(ctx, uc.config.BatchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if err := uc.deliver(ctx, event); err != nil {
				return err
			}
		}

		return nil
	})
}

func (uc *OutboxUseCase) deliver(ctx context.Context, event *domain.OutboxEvent) error {
	start := uc.now()
	status := "success"

	if err := uc.eventProcessor.Process(ctx, event); err != nil {
		status = "error"
		event.MarkAttemptFailed(err, uc.config.MaxRetries)
		uc.log().Error("failed to deliver outbox event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.EventType),
			slog.Int("retries", event.Retries),
			slog.String("status", string(event.Status)),
			slog.Any("error", err),
		)
	} else {
		event.MarkProcessed(uc.now())
	}

	uc.metrics.RecordOperation(ctx, "outbox", event.EventType, status)
	uc.metrics.RecordDuration(ctx, "outbox", event.EventType, uc.now().Sub(start), status)

	return uc.outboxRepo.Update(ctx, event)
}

func (uc *OutboxUseCase) log() *slog.Logger {
	if uc.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return uc.logger
}
