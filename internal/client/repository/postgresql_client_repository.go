// Package repository implements data persistence for clients.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	"github.com/allisson/clients/internal/database"
	apperrors "github.com/allisson/clients/internal/errors"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// PostgreSQLClientRepository implements Client persistence for PostgreSQL.
type PostgreSQLClientRepository struct {
	db *sql.DB
}

// NewPostgreSQLClientRepository creates a new PostgreSQL Client repository.
func NewPostgreSQLClientRepository(db *sql.DB) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{db: db}
}

// Create inserts a new Client. Returns ErrClientAlreadyExists when the email or CPF is taken.
func (p *PostgreSQLClientRepository) Create(ctx context.Context, client *clientDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO clients (id, name, email, password, cpf, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := querier.QueryRowContext(
		ctx,
		query,
		client.ID,
		client.Name,
		client.Email,
		client.Password,
		client.CPF,
	).Scan(&client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return clientDomain.ErrClientAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Get retrieves a Client by ID.
func (p *PostgreSQLClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, password, cpf, created_at, updated_at FROM clients WHERE id = $1`

	var client clientDomain.Client
	err := querier.QueryRowContext(ctx, query, clientID).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Password,
		&client.CPF,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, clientDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client")
	}

	return &client, nil
}

// List retrieves clients ordered by ID descending. UUIDv7 IDs make this newest first.
func (p *PostgreSQLClientRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*clientDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, password, cpf, created_at, updated_at
			  FROM clients
			  ORDER BY id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer func() {
		_ = rows.Close()
	}()

	clients := make([]*clientDomain.Client, 0)
	for rows.Next() {
		var client clientDomain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Password,
			&client.CPF,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client row")
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating client rows")
	}

	return clients, nil
}

func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	return false
}
