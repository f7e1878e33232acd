package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq" // For pq.Error

	"jencrm_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(ctx context.Context, client *models.Client) error
	GetClientByID(ctx context.Context, id int64) (*models.Client, error)
	GetClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id int64) error
}

type clientRepository struct {
	db SQLExecutor
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db SQLExecutor) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, first_name, last_name, email, phone, passport_data, created_at, updated_at`

// passportParam converts an optional JSON blob to a bind parameter that maps
// to NULL when absent. lib/pq would send a raw []byte as bytea, not jsonb.
func passportParam(data json.RawMessage) interface{} {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}

// CreateClient inserts a new client and fills in the server-assigned fields.
func (r *clientRepository) CreateClient(ctx context.Context, client *models.Client) error {
	query := `INSERT INTO clients (first_name, last_name, email, phone, passport_data)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`

	var createdAt, updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query,
		client.FirstName, client.LastName, client.Email, client.Phone,
		passportParam(client.PassportData),
	).Scan(&client.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	assignTime(&client.CreatedAt, createdAt)
	assignTime(&client.UpdatedAt, updatedAt)
	return nil
}

// GetClientByID retrieves a client by its ID.
func (r *clientRepository) GetClientByID(ctx context.Context, id int64) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return client, nil
}

// GetClients retrieves all clients ordered by ID ascending.
func (r *clientRepository) GetClients(ctx context.Context) ([]models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, *client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient replaces all mutable fields of an existing client.
func (r *clientRepository) UpdateClient(ctx context.Context, client *models.Client) error {
	query := `UPDATE clients
	          SET first_name = $1, last_name = $2, email = $3, phone = $4,
	              passport_data = $5, updated_at = NOW()
	          WHERE id = $6
	          RETURNING created_at, updated_at`

	var createdAt, updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query,
		client.FirstName, client.LastName, client.Email, client.Phone,
		passportParam(client.PassportData), client.ID,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	assignTime(&client.CreatedAt, createdAt)
	assignTime(&client.UpdatedAt, updatedAt)
	return nil
}

// DeleteClient removes a client from the database.
func (r *clientRepository) DeleteClient(ctx context.Context, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: client ID %d is referenced by deals (constraint: %s)", ErrForeignKeyViolation, id, pqErr.Constraint)
		}
		return fmt.Errorf("%w: deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(s scanner) (*models.Client, error) {
	client := &models.Client{}
	var passportData []byte
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&client.ID, &client.FirstName, &client.LastName, &client.Email, &client.Phone,
		&passportData, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(passportData) > 0 {
		client.PassportData = json.RawMessage(passportData)
	}
	assignTime(&client.CreatedAt, createdAt)
	assignTime(&client.UpdatedAt, updatedAt)
	return client, nil
}

func assignTime(dst **time.Time, src sql.NullTime) {
	if src.Valid {
		t := src.Time
		*dst = &t
	}
}
