// Package app provides the dependency injection container that assembles the application.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	clientHTTP "github.com/allisson/clients/internal/client/http"
	clientRepository "github.com/allisson/clients/internal/client/repository"
	clientService "github.com/allisson/clients/internal/client/service"
	clientUsecase "github.com/allisson/clients/internal/client/usecase"
	"github.com/allisson/clients/internal/config"
	"github.com/allisson/clients/internal/database"
	"github.com/allisson/clients/internal/http"
	"github.com/allisson/clients/internal/metrics"
	outboxRepository "github.com/allisson/clients/internal/outbox/repository"
	outboxUsecase "github.com/allisson/clients/internal/outbox/usecase"
)

const connectTimeout = 10 * time.Second

// Container holds all application dependencies. Components are created on first access.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Repositories
	clientRepo clientUsecase.ClientRepository
	outboxRepo outboxUsecase.OutboxEventRepository

	// Services
	passwordService clientService.PasswordService
	validator       clientUsecase.Validator

	// Use cases
	clientUseCase clientUsecase.ClientUseCase
	signupUseCase clientUsecase.SignupUseCase
	outboxUseCase outboxUsecase.UseCase

	// Transport
	clientHandler *clientHTTP.ClientHandler
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	clientRepoInit      sync.Once
	outboxRepoInit      sync.Once
	passwordServiceInit sync.Once
	clientUseCaseInit   sync.Once
	signupUseCaseInit   sync.Once
	outboxUseCaseInit   sync.Once
	clientHandlerInit   sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	errMu               sync.Mutex
	initErrors          map[string]error
}

// NewContainer creates a container for cfg.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

func (c *Container) setInitError(name string, err error) {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.initErrors[name]
}

// Logger returns the JSON logger configured for the log level.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection pool.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.setInitError("db", err)
			return
		}
		c.db = db
	})
	if err := c.initError("db"); err != nil {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		txManager, err := c.initTxManager()
		if err != nil {
			c.setInitError("txManager", err)
			return
		}
		c.txManager = txManager
	})
	if err := c.initError("txManager"); err != nil {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.setInitError("metricsProvider", fmt.Errorf("failed to create metrics provider: %w", err))
			return
		}
		c.metricsProvider = provider
	})
	if err := c.initError("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		businessMetrics, err := c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
			return
		}
		c.businessMetrics = businessMetrics
	})
	if err := c.initError("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// ClientRepository returns the client repository for the configured driver.
func (c *Container) ClientRepository() (clientUsecase.ClientRepository, error) {
	c.clientRepoInit.Do(func() {
		repo, err := c.initClientRepository()
		if err != nil {
			c.setInitError("clientRepo", err)
			return
		}
		c.clientRepo = repo
	})
	if err := c.initError("clientRepo"); err != nil {
		return nil, err
	}
	return c.clientRepo, nil
}

// OutboxRepository returns the outbox event repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	c.outboxRepoInit.Do(func() {
		repo, err := c.initOutboxRepository()
		if err != nil {
			c.setInitError("outboxRepo", err)
			return
		}
		c.outboxRepo = repo
	})
	if err := c.initError("outboxRepo"); err != nil {
		return nil, err
	}
	return c.outboxRepo, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() (clientService.PasswordService, error) {
	c.passwordServiceInit.Do(func() {
		passwordService, err := clientService.NewPasswordService()
		if err != nil {
			c.setInitError("passwordService", fmt.Errorf("failed to create password service: %w", err))
			return
		}
		c.passwordService = passwordService
	})
	if err := c.initError("passwordService"); err != nil {
		return nil, err
	}
	return c.passwordService, nil
}

// Validator returns the signup field validator.
func (c *Container) Validator() clientUsecase.Validator {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.validator == nil {
		c.validator = clientService.NewSignupValidator()
	}
	return c.validator
}

// ClientUseCase returns the client use case.
func (c *Container) ClientUseCase() (clientUsecase.ClientUseCase, error) {
	c.clientUseCaseInit.Do(func() {
		useCase, err := c.initClientUseCase()
		if err != nil {
			c.setInitError("clientUseCase", err)
			return
		}
		c.clientUseCase = useCase
	})
	if err := c.initError("clientUseCase"); err != nil {
		return nil, err
	}
	return c.clientUseCase, nil
}

// SignupUseCase returns the signup request processor.
func (c *Container) SignupUseCase() (clientUsecase.SignupUseCase, error) {
	c.signupUseCaseInit.Do(func() {
		useCase, err := c.initSignupUseCase()
		if err != nil {
			c.setInitError("signupUseCase", err)
			return
		}
		c.signupUseCase = useCase
	})
	if err := c.initError("signupUseCase"); err != nil {
		return nil, err
	}
	return c.signupUseCase, nil
}

// OutboxUseCase returns the outbox worker.
func (c *Container) OutboxUseCase() (outboxUsecase.UseCase, error) {
	c.outboxUseCaseInit.Do(func() {
		useCase, err := c.initOutboxUseCase()
		if err != nil {
			c.setInitError("outboxUseCase", err)
			return
		}
		c.outboxUseCase = useCase
	})
	if err := c.initError("outboxUseCase"); err != nil {
		return nil, err
	}
	return c.outboxUseCase, nil
}

// ClientHandler returns the HTTP handler for the client endpoints.
func (c *Container) ClientHandler() (*clientHTTP.ClientHandler, error) {
	c.clientHandlerInit.Do(func() {
		handler, err := c.initClientHandler()
		if err != nil {
			c.setInitError("clientHandler", err)
			return
		}
		c.clientHandler = handler
	})
	if err := c.initError("clientHandler"); err != nil {
		return nil, err
	}
	return c.clientHandler, nil
}

// HTTPServer returns the API server with its routes registered.
// Background work started by the router stops when ctx is done.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer(ctx)
		if err != nil {
			c.setInitError("httpServer", err)
			return
		}
		c.httpServer = server
	})
	if err := c.initError("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("metricsServer", fmt.Errorf("failed to get metrics provider for metrics server: %w", err))
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
	})
	if err := c.initError("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases every initialized resource and joins the errors.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initDB() (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := database.Connect(ctx, database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), provider.Namespace())
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

func (c *Container) initClientRepository() (clientUsecase.ClientRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for client repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return clientRepository.NewMySQLClientRepository(db), nil
	case database.DriverPostgres:
		return clientRepository.NewPostgreSQLClientRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initOutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return outboxRepository.NewMySQLOutboxEventRepository(db), nil
	case database.DriverPostgres:
		return outboxRepository.NewPostgreSQLOutboxEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initClientUseCase() (clientUsecase.ClientUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for client use case: %w", err)
	}

	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for client use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for client use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for client use case: %w", err)
	}

	useCase := clientUsecase.NewClientUseCase(txManager, clientRepo, outboxRepo, passwordService)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for client use case: %w", err)
		}
		return clientUsecase.NewClientUseCaseWithMetrics(useCase, businessMetrics), nil
	}

	return useCase, nil
}

func (c *Container) initSignupUseCase() (clientUsecase.SignupUseCase, error) {
	clientUseCase, err := c.ClientUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get client use case for signup use case: %w", err)
	}

	useCase := clientUsecase.NewSignupUseCase(c.Validator(), clientUseCase, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for signup use case: %w", err)
		}
		return clientUsecase.NewSignupUseCaseWithMetrics(useCase, businessMetrics), nil
	}

	return useCase, nil
}

func (c *Container) initOutboxUseCase() (outboxUsecase.UseCase, error) {
	logger := c.Logger()

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for outbox use case: %w", err)
	}

	router := outboxUsecase.NewEventRouter(logger).
		Register(clientUsecase.ClientCreatedEventType, clientUsecase.NewClientCreatedProcessor(logger))

	useCaseConfig := outboxUsecase.Config{
		Interval:   c.config.WorkerInterval,
		BatchSize:  c.config.WorkerBatchSize,
		MaxRetries: c.config.WorkerMaxRetries,
	}

	return outboxUsecase.NewOutboxUseCase(useCaseConfig, txManager, outboxRepo, router, businessMetrics, logger), nil
}

func (c *Container) initClientHandler() (*clientHTTP.ClientHandler, error) {
	signupUseCase, err := c.SignupUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get signup use case for client handler: %w", err)
	}

	clientUseCase, err := c.ClientUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get client use case for client handler: %w", err)
	}

	return clientHTTP.NewClientHandler(signupUseCase, clientUseCase, c.Logger()), nil
}

func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	handler, err := c.ClientHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get client handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(ctx, c.config, handler, provider)

	return server, nil
}
