package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/allisson/clients/internal/outbox/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository
type MockOutboxEventRepository struct {
	mock.Mock
}

func (m *MockOutboxEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockOutboxEventRepository) GetPendingEvents(
	ctx context.Context,
	limit int,
) ([]*domain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OutboxEvent), args.Error(1)
}

func (m *MockOutboxEventRepository) Update(ctx context.Context, event *domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockEventProcessor is a mock implementation of EventProcessor
type MockEventProcessor struct {
	mock.Mock
}

func (m *MockEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

var testConfig = Config{
	Interval:   5 * time.Second,
	BatchSize:  10,
	MaxRetries: 3,
}

func newPendingEvent(retries int) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: "client.created",
		Payload:   `{"client_id":"0190a4e4-0000-7000-8000-000000000000"}`,
		Status:    domain.OutboxEventStatusPending,
		Retries:   retries,
	}
}

func setupOutboxUseCase(config Config) (*OutboxUseCase, *MockTxManager, *MockOutboxEventRepository, *MockEventProcessor) {
	txManager := &MockTxManager{}
	outboxRepo := &MockOutboxEventRepository{}
	eventProcessor := &MockEventProcessor{}
	return NewOutboxUseCase(config, txManager, outboxRepo, eventProcessor, nil, nil),
		txManager, outboxRepo, eventProcessor
}

func TestNewOutboxUseCase(t *testing.T) {
	uc, _, _, _ := setupOutboxUseCase(testConfig)

	assert.Equal(t, testConfig, uc.config)
	assert.NotNil(t, uc.metrics)
}

func TestOutboxUseCase_Start_ContextCancellation(t *testing.T) {
	uc, _, _, _ := setupOutboxUseCase(Config{Interval: 100 * time.Millisecond, BatchSize: 10, MaxRetries: 3})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := uc.Start(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestOutboxUseCase_Start_ProcessesOnTick(t *testing.T) {
	uc, txManager, outboxRepo, _ := setupOutboxUseCase(Config{Interval: 10 * time.Millisecond, BatchSize: 5, MaxRetries: 3})

	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once
	txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
	outboxRepo.On("GetPendingEvents", mock.Anything, 5).
		Run(func(mock.Arguments) { once.Do(cancel) }).
		Return([]*domain.OutboxEvent{}, nil)

	done := make(chan error, 1)
	go func() { done <- uc.Start(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("worker did not stop after cancellation")
	}
	outboxRepo.AssertCalled(t, "GetPendingEvents", mock.Anything, 5)
}

func TestOutboxUseCase_ProcessEvents_Success(t *testing.T) {
	uc, txManager, outboxRepo, eventProcessor := setupOutboxUseCase(testConfig)
	ctx := context.Background()
	events := []*domain.OutboxEvent{newPendingEvent(0), newPendingEvent(0)}

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, testConfig.BatchSize).Return(events, nil)
	eventProcessor.On("Process", ctx, events[0]).Return(nil)
	eventProcessor.On("Process", ctx, events[1]).Return(nil)
	outboxRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.OutboxEvent) bool {
		return e.Status == domain.OutboxEventStatusProcessed && e.ProcessedAt != nil
	})).Return(nil).Times(2)

	err := uc.ProcessEvents(ctx)

	assert.NoError(t, err)
	txManager.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	eventProcessor.AssertExpectations(t)
}

func TestOutboxUseCase_ProcessEvents_NoEvents(t *testing.T) {
	uc, txManager, outboxRepo, eventProcessor := setupOutboxUseCase(testConfig)
	ctx := context.Background()

	txManager.On("WithTx", ctx, mock.Anything).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, testConfig.BatchSize).Return([]*domain.OutboxEvent{}, nil)

	err := uc.ProcessEvents(ctx)

	assert.NoError(t, err)
	eventProcessor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
	outboxRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOutboxUseCase_ProcessEvents_GetPendingError(t *testing.T) {
	uc, txManager, outboxRepo, _ := setupOutboxUseCase(testConfig)
	ctx := context.Background()

	txManager.On("WithTx", ctx, mock.Anything).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, testConfig.BatchSize).Return(nil, errors.New("database error"))

	err := uc.ProcessEvents(ctx)

	assert.ErrorContains(t, err, "database error")
}

func TestOutboxUseCase_ProcessEvents_ProcessorError(t *testing.T) {
	tests := []struct {
		name           string
		retries        int
		expectedStatus domain.OutboxEventStatus
	}{
		{"StaysPending", 0, domain.OutboxEventStatusPending},
		{"MaxRetriesReached", 2, domain.OutboxEventStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, txManager, outboxRepo, eventProcessor := setupOutboxUseCase(testConfig)
			ctx := context.Background()
			event := newPendingEvent(tt.retries)

			txManager.On("WithTx", ctx, mock.Anything).Return(nil)
			outboxRepo.On("GetPendingEvents", ctx, testConfig.BatchSize).Return([]*domain.OutboxEvent{event}, nil)
			eventProcessor.On("Process", ctx, event).Return(errors.New("processing failed"))
			outboxRepo.On("Update", ctx, event).Return(nil).Once()

			err := uc.ProcessEvents(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.retries+1, event.Retries)
			assert.Equal(t, tt.expectedStatus, event.Status)
			require.NotNil(t, event.LastError)
			assert.Equal(t, "processing failed", *event.LastError)
			outboxRepo.AssertExpectations(t)
		})
	}
}

func TestOutboxUseCase_ProcessEvents_UpdateError(t *testing.T) {
	uc, txManager, outboxRepo, eventProcessor := setupOutboxUseCase(testConfig)
	ctx := context.Background()
	events := []*domain.OutboxEvent{newPendingEvent(0), newPendingEvent(0)}

	txManager.On("WithTx", ctx, mock.Anything).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, testConfig.BatchSize).Return(events, nil)
	eventProcessor.On("Process", ctx, events[0]).Return(nil)
	outboxRepo.On("Update", ctx, events[0]).Return(errors.New("update failed"))

	err := uc.ProcessEvents(ctx)

	assert.ErrorContains(t, err, "update failed")
	eventProcessor.AssertNotCalled(t, "Process", ctx, events[1])
}

func TestEventRouter_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("RegisteredType", func(t *testing.T) {
		processor := &MockEventProcessor{}
		router := NewEventRouter(nil).Register("client.created", processor)
		event := newPendingEvent(0)

		processor.On("Process", ctx, event).Return(nil).Once()

		assert.NoError(t, router.Process(ctx, event))
		processor.AssertExpectations(t)
	})

	t.Run("ProcessorError", func(t *testing.T) {
		processor := &MockEventProcessor{}
		router := NewEventRouter(nil).Register("client.created", processor)
		event := newPendingEvent(0)

		processor.On("Process", ctx, event).Return(errors.New("boom")).Once()

		assert.EqualError(t, router.Process(ctx, event), "boom")
	})

	t.Run("UnknownType", func(t *testing.T) {
		router := NewEventRouter(nil)
		event := newPendingEvent(0)
		event.EventType = "unknown.event"

		assert.NoError(t, router.Process(ctx, event))
	})
}
