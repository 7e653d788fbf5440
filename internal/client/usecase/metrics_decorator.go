package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	"github.com/allisson/clients/internal/metrics"
)

const metricsDomain = "clients"

// signupUseCaseWithMetrics decorates SignupUseCase with metrics instrumentation.
type signupUseCaseWithMetrics struct {
	next    SignupUseCase
	metrics metrics.BusinessMetrics
}

// NewSignupUseCaseWithMetrics wraps a SignupUseCase with metrics recording.
func NewSignupUseCaseWithMetrics(useCase SignupUseCase, m metrics.BusinessMetrics) SignupUseCase {
	return &signupUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Handle records the outcome of a signup as success, rejected or error.
func (s *signupUseCaseWithMetrics) Handle(
	ctx context.Context,
	request *clientDomain.SignupRequest,
) *clientDomain.SignupResponse {
	start := time.Now()
	response := s.next.Handle(ctx, request)

	status := signupStatus(response.StatusCode)
	s.metrics.RecordOperation(ctx, metricsDomain, "signup_handle", status)
	s.metrics.RecordDuration(ctx, metricsDomain, "signup_handle", time.Since(start), status)

	return response
}

func signupStatus(statusCode int) string {
	switch {
	case statusCode == http.StatusOK:
		return "success"
	case statusCode >= http.StatusInternalServerError:
		return "error"
	default:
		return "rejected"
	}
}

// clientUseCaseWithMetrics decorates ClientUseCase with metrics instrumentation.
type clientUseCaseWithMetrics struct {
	next    ClientUseCase
	metrics metrics.BusinessMetrics
}

// NewClientUseCaseWithMetrics wraps a ClientUseCase with metrics recording.
func NewClientUseCaseWithMetrics(useCase ClientUseCase, m metrics.BusinessMetrics) ClientUseCase {
	return &clientUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *clientUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Create records metrics for client creation operations.
func (c *clientUseCaseWithMetrics) Create(
	ctx context.Context,
	input *clientDomain.ClientCreationInput,
) (*clientDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Create(ctx, input)
	c.record(ctx, "client_create", start, err)
	return client, err
}

// Get records metrics for client retrieval operations.
func (c *clientUseCaseWithMetrics) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Get(ctx, clientID)
	c.record(ctx, "client_get", start, err)
	return client, err
}

// List records metrics for client listing operations.
func (c *clientUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	start := time.Now()
	clients, err := c.next.List(ctx, offset, limit)
	c.record(ctx, "client_list", start, err)
	return clients, err
}
