package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/allisson/clients/internal/app"
	"github.com/allisson/clients/internal/config"
	outboxUsecase "github.com/allisson/clients/internal/outbox/usecase"
)

// RunWorker starts the outbox worker and blocks until ctx is done.
func RunWorker(ctx context.Context, cfg *config.Config) error {
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	outboxUseCase, err := container.OutboxUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize outbox worker: %w", err)
	}

	return runWorker(ctx, outboxUseCase, logger)
}

func runWorker(ctx context.Context, worker outboxUsecase.UseCase, logger *slog.Logger) error {
	err := worker.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("outbox worker failed", slog.Any("error", err))
		return fmt.Errorf("outbox worker stopped: %w", err)
	}
	return nil
}
