package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/project"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectProjectColumns = `
	p.id, p.name, p.status, p.description, p.start_date, p.due_date,
	p.budget, p.expenses, p.payment_received, p.payment_pending, p.currency,
	p.client_id, c.name AS client_name, p.created_at, p.updated_at, p.deleted_at
`

// scanProject reads a project row. Expected column order matches selectProjectColumns.
func scanProject(s scanner) (*project.Project, error) {
	var p project.Project

	var statusStr string

	var clientID *uuid.UUID

	var clientName sql.NullString

	if err := s.Scan(
		&p.ID, &p.Name, &statusStr, &p.Description, &p.StartDate, &p.DueDate,
		&p.Budget, &p.Expenses, &p.PaymentReceived, &p.PaymentPending, &p.Currency,
		&clientID, &clientName, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.Status = project.Status(statusStr)
	p.ClientID = clientID

	if clientID != nil && clientName.Valid {
		p.Client = &project.ClientRef{ID: *clientID, Name: clientName.String}
	}

	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (name, status, description, start_date, due_date, budget, expenses, payment_received, payment_pending, currency, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Name, p.Status, p.Description, p.StartDate, p.DueDate,
		p.Budget, p.Expenses, p.PaymentReceived, p.PaymentPending,
		p.Currency, p.ClientID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + `
		FROM projects p
		LEFT JOIN clients c ON p.client_id = c.id
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project: %w", err)
	}

	return p, nil
}

func (s *Store) ListProjects(ctx context.Context, filter project.ListFilter) ([]*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + `
		FROM projects p
		LEFT JOIN clients c ON p.client_id = c.id
		WHERE p.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND p.client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND p.start_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND p.start_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}

	return projects, nil
}

func (s *Store) UpdateProject(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET name = $1, status = $2, description = $3, start_date = $4, due_date = $5,
			budget = $6, expenses = $7, payment_received = $8, payment_pending = $9,
			currency = $10, client_id = $11, updated_at = NOW()
		WHERE id = $12 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name, p.Status, p.Description, p.StartDate, p.DueDate,
		p.Budget, p.Expenses, p.PaymentReceived, p.PaymentPending,
		p.Currency, p.ClientID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status project.Status) error {
	query := `
		UPDATE projects
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating project status: %w", err)
	}

	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE projects
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}
