// Package mocks provides testify mocks for the client use case interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	outboxDomain "github.com/allisson/clients/internal/outbox/domain"
)

// MockValidator is a mock implementation of usecase.Validator.
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) IsEmail(email string) bool {
	return m.Called(email).Bool(0)
}

func (m *MockValidator) IsCPF(cpf string) bool {
	return m.Called(cpf).Bool(0)
}

func (m *MockValidator) IsZipCode(zipCode string) bool {
	return m.Called(zipCode).Bool(0)
}

// MockClientCreator is a mock implementation of usecase.ClientCreator.
type MockClientCreator struct {
	mock.Mock
}

func (m *MockClientCreator) Create(
	ctx context.Context,
	input *clientDomain.ClientCreationInput,
) (*clientDomain.Client, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

// MockClientRepository is a mock implementation of usecase.ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *clientDomain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clientDomain.Client), args.Error(1)
}

// MockOutboxEventRepository is a mock implementation of usecase.OutboxEventRepository.
type MockOutboxEventRepository struct {
	mock.Mock
}

func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockSignupUseCase is a mock implementation of usecase.SignupUseCase.
type MockSignupUseCase struct {
	mock.Mock
}

func (m *MockSignupUseCase) Handle(
	ctx context.Context,
	request *clientDomain.SignupRequest,
) *clientDomain.SignupResponse {
	return m.Called(ctx, request).Get(0).(*clientDomain.SignupResponse)
}

// MockClientUseCase is a mock implementation of usecase.ClientUseCase.
type MockClientUseCase struct {
	mock.Mock
}

func (m *MockClientUseCase) Create(
	ctx context.Context,
	input *clientDomain.ClientCreationInput,
) (*clientDomain.Client, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

func (m *MockClientUseCase) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

func (m *MockClientUseCase) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clientDomain.Client), args.Error(1)
}

// MockTxManager is a mock implementation of database.TxManager that runs fn
// unless an error is configured.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// MockPasswordService is a mock implementation of service.PasswordService.
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Compare(plainPassword, hashedPassword string) bool {
	return m.Called(plainPassword, hashedPassword).Bool(0)
}
