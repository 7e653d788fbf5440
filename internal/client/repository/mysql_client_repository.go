package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	"github.com/allisson/clients/internal/database"
	apperrors "github.com/allisson/clients/internal/errors"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// MySQLClientRepository implements Client persistence for MySQL.
// Client IDs are stored as BINARY(16).
type MySQLClientRepository struct {
	db *sql.DB
}

// NewMySQLClientRepository creates a new MySQL Client repository.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}

// Create inserts a new Client. MySQL has no RETURNING clause, so timestamps are
// set by the application. Returns ErrClientAlreadyExists when the email or CPF is taken.
func (m *MySQLClientRepository) Create(ctx context.Context, client *clientDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	id, err := client.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal client id")
	}

	now := time.Now().UTC().Truncate(time.Second)
	query := `INSERT INTO clients (id, name, email, password, cpf, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		client.Name,
		client.Email,
		client.Password,
		client.CPF,
		now,
		now,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return clientDomain.ErrClientAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create client")
	}

	client.CreatedAt = now
	client.UpdatedAt = now
	return nil
}

// Get retrieves a Client by ID.
func (m *MySQLClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := clientID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal client id")
	}

	query := `SELECT id, name, email, password, cpf, created_at, updated_at FROM clients WHERE id = ?`

	var client clientDomain.Client
	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
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

	if err := client.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal client id")
	}

	return &client, nil
}

// List retrieves clients ordered by ID descending.
func (m *MySQLClientRepository) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, password, cpf, created_at, updated_at
			  FROM clients
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

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
		var idBytes []byte

		if err := rows.Scan(
			&idBytes,
			&client.Name,
			&client.Email,
			&client.Password,
			&client.CPF,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client row")
		}

		if err := client.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal client id")
		}

		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating client rows")
	}

	return clients, nil
}

func isMySQLUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
