package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/client"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectClientColumns = `
	id, name, company, email, phone, address, city, state, zip_code, country,
	status, created_at, updated_at, deleted_at
`

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	var statusStr string

	if err := s.Scan(
		&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Address,
		&c.City, &c.State, &c.ZipCode, &c.Country,
		&statusStr, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.Status = client.Status(statusStr)

	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (name, company, email, phone, address, city, state, zip_code, country, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Company, c.Email, c.Phone, c.Address,
		c.City, c.State, c.ZipCode, c.Country, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients
		WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) FindClientByName(ctx context.Context, name string) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients
		WHERE name = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
		LIMIT 1`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("finding client by name: %w", err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context, filter client.ListFilter) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE '%%' || $%d || '%%' OR company ILIKE '%%' || $%d || '%%')", argIdx, argIdx)

		args = append(args, filter.Search)
		argIdx++
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = $1, company = $2, email = $3, phone = $4, address = $5,
			city = $6, state = $7, zip_code = $8, country = $9, status = $10, updated_at = NOW()
		WHERE id = $11 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name, c.Company, c.Email, c.Phone, c.Address,
		c.City, c.State, c.ZipCode, c.Country, c.Status, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE clients
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	return nil
}
